package requests

type CreateAppointment struct {
	PatientID string `json:"patient_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,clinic_hours"`
	Reason    string `json:"reason" validate:"required,max=500"`
}

type UpdateAppointment struct {
	PatientID *string `json:"patient_id" validate:"omitempty,min=1"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time      *string `json:"time" validate:"omitempty,clinic_hours"`
	Reason    *string `json:"reason" validate:"omitempty,max=500"`
	Status    *string `json:"status" validate:"omitempty,appointment_state"`
}

type AppointmentQuery struct {
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}
