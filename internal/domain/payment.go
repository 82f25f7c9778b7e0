package domain

// PaymentOutcome is what the payment processor reports for one charge
// attempt. It is not persisted as its own entity; it folds into the
// order's status and payment reference.
type PaymentOutcome struct {
	Succeeded   bool
	ProviderRef string
	Reason      string
}
