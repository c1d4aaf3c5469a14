package update_appointment_status

import (
	"fmt"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
)

// Письма пациентам отправляются на испанском — язык клиники
const (
	subjectConfirmed = "Confirmación de Cita - Dr. Marcos Gómez"
	subjectCancelled = "Cita Cancelada - Dr. Marcos Gómez"

	clinicAddress = "Tte. Gral. Juan Domingo Perón 4190, CABA"
	clinicPhone   = "+54 11 4959-0200"
	clinicEmail   = "consultas@drgomez.com.ar"
	clinicFooter  = "Dr. Marcos Gómez - Traumatología y Ortopedia"
)

// confirmationEmail собирает тему и тело письма о подтверждении записи
func confirmationEmail(appt *domain.Appointment) (subject, htmlBody string) {
	htmlBody = fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; padding: 20px;">
            <h2 style="color: #1e3a8a;">¡Cita Confirmada!</h2>
            <p>Estimado/a <strong>%s</strong>,</p>
            <p>Su cita ha sido <strong>confirmada</strong> con los siguientes detalles:</p>
            <ul>
                <li><strong>Fecha:</strong> %s</li>
                <li><strong>Hora:</strong> %s</li>
                <li><strong>Motivo:</strong> %s</li>
            </ul>
            <p>Ubicación: %s</p>
            <p>Teléfono: %s</p>
            <hr>
            <p style="color: #6b7280; font-size: 12px;">
                Si necesita cancelar o reprogramar, por favor contacte con nosotros.
            </p>
            <p style="color: #6b7280; font-size: 12px;">%s</p>
        </div>`,
		appt.PatientFullName(),
		appt.AppointmentDate.Format(domain.DateFormat),
		appt.StartTime,
		appt.Reason,
		clinicAddress,
		clinicPhone,
		clinicFooter,
	)

	return subjectConfirmed, htmlBody
}

// cancellationEmail собирает тему и тело письма об отмене записи
func cancellationEmail(appt *domain.Appointment) (subject, htmlBody string) {
	htmlBody = fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; padding: 20px;">
            <h2 style="color: #dc2626;">Cita Cancelada</h2>
            <p>Estimado/a <strong>%s</strong>,</p>
            <p>Lamentamos informarle que su cita ha sido <strong>cancelada</strong>.</p>
            <p>Si desea reagendar, puede solicitar una nueva cita a través de nuestra web o contactarnos:</p>
            <p>Teléfono: %s</p>
            <p>Email: %s</p>
            <hr>
            <p style="color: #6b7280; font-size: 12px;">%s</p>
        </div>`,
		appt.PatientFullName(),
		clinicPhone,
		clinicEmail,
		clinicFooter,
	)

	return subjectCancelled, htmlBody
}
