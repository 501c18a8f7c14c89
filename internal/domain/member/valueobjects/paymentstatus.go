package valueobjects

type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusFullyPaid     PaymentStatus = "fully_paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// CanAcceptPayment reports whether further payments are allowed.
func (s PaymentStatus) CanAcceptPayment() bool {
	return s != PaymentStatusFullyPaid
}
