package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingHorizonDays максимальный горизонт записи: сегодня + 14 дней включительно
const BookingHorizonDays = 14

// Reasons фиксированный каталог причин визита.
// Совпадает со списком услуг на публичной форме записи.
var Reasons = []string{
	"Traumatología Deportiva",
	"Cirugía Ortopédica",
	"Fracturas y Lesiones",
	"Artroscopía",
	"Prótesis Articulares",
	"Rehabilitación",
}

// IsValidReason returns true if reason is one of the catalog entries
func IsValidReason(reason string) bool {
	for _, r := range Reasons {
		if r == reason {
			return true
		}
	}
	return false
}
