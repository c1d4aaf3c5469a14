package provider

import "errors"

var (
	// ErrProviderNotFound возвращается, когда страховая (obra social) не найдена
	ErrProviderNotFound = errors.New("provider.repository: insurance provider not found")

	// ErrProviderExists возвращается при попытке создать дубликат названия
	ErrProviderExists = errors.New("provider.repository: insurance provider already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("provider.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("provider.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("provider.repository: failed to scan row")
)
