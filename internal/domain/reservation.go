package domain

// ReservationStatus статус брони в журнале бронирований
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCompleted ReservationStatus = "COMPLETED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationRejected  ReservationStatus = "REJECTED"
)

// InactiveReservationStatuses статусы, которые не занимают слот
var InactiveReservationStatuses = []ReservationStatus{
	ReservationCancelled,
	ReservationRejected,
}
