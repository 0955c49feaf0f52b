package domain

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking is a scheduled cleaning visit submitted through the booking form.
// CreatedAt is assigned once at creation; only Status may change afterwards.
type Booking struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Whatsapp      bool          `json:"whatsapp"`
	Service       string        `json:"service"`
	Location      string        `json:"location"`
	PaymentMethod string        `json:"paymentMethod"`
	CreatedAt     string        `json:"createdAt"`
	Status        BookingStatus `json:"status"`
}

// BookingInput is the validated, already-defaulted create payload.
type BookingInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Whatsapp      bool   `json:"whatsapp"`
	Service       string `json:"service"`
	Location      string `json:"location"`
	PaymentMethod string `json:"paymentMethod"`
}
