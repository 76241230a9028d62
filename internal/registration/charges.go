package registration

import (
	"strings"

	"doctor-registration/internal/domain/entity"
)

// SetPrice stores the fee for one modality. An empty value clears it.
func (w *Wizard) SetPrice(kind entity.PriceKind, value string) error {
	value = strings.TrimSpace(value)
	var p ChargesPatch
	switch kind {
	case entity.PriceClinicVisit:
		p.ClinicVisit = &value
	case entity.PriceOnlineConsultation:
		p.OnlineConsultation = &value
	case entity.PriceHomeVisit:
		p.HomeVisit = &value
	default:
		return ErrUnknownPriceKind
	}
	return w.Update(p)
}

func (w *Wizard) SetCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	return w.Update(ChargesPatch{Currency: &currency})
}

// TogglePaymentMethod adds or removes an accepted payment method.
func (w *Wizard) TogglePaymentMethod(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	current := w.store.record.Charges.PaymentMethods
	methods := make([]string, 0, len(current)+1)
	found := false
	for _, m := range current {
		if m == id {
			found = true
			continue
		}
		methods = append(methods, m)
	}
	if !found {
		methods = append(methods, id)
	}
	return w.updateLocked(ChargesPatch{PaymentMethods: &methods})
}
