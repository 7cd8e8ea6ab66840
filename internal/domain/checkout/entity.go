// internal/domain/checkout/entity.go
package checkout

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	ErrStepNotReached = errors.New("checkout step not reached")
	ErrInvalidForm    = errors.New("invalid checkout form")
)

// Step is a checkout stage, numbered from 1
type Step int

const (
	StepContact Step = iota + 1
	StepShipping
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepContact:
		return "Contact"
	case StepShipping:
		return "Shipping"
	case StepPayment:
		return "Payment"
	case StepReview:
		return "Review"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Steps lists the checkout stages in order
var Steps = []Step{StepContact, StepShipping, StepPayment, StepReview}

// ContactForm represents the first checkout step
type ContactForm struct {
	Email      string `json:"email" binding:"required,email"`
	Newsletter bool   `json:"newsletter"`
}

// ShippingForm represents the shipping address step
type ShippingForm struct {
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Address     string `json:"address" binding:"required,max=200"`
	City        string `json:"city" binding:"required,max=100"`
	State       string `json:"state" binding:"required,max=100"`
	Zip         string `json:"zip" binding:"required,max=20"`
	Country     string `json:"country" binding:"required,max=100"`
	Phone       string `json:"phone" binding:"omitempty,max=30"`
	SaveAddress bool   `json:"save_address"`
}

// FullName returns first and last name
func (f ShippingForm) FullName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}

// PaymentForm represents the card step. It is never stored as submitted.
type PaymentForm struct {
	CardNumber string `json:"card_number" binding:"required,credit_card"`
	Expiry     string `json:"expiry" binding:"required,card_expiry"`
	CVV        string `json:"cvv" binding:"required,numeric,min=3,max=4"`
	NameOnCard string `json:"name_on_card" binding:"required,max=100"`
}

// PaymentSummary is what is kept of a payment form
type PaymentSummary struct {
	Last4      string `json:"last4"`
	NameOnCard string `json:"name_on_card"`
}

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the validator used for checkout forms. It reads the
// same "binding" tags gin uses.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.SetTagName("binding")
		_ = RegisterValidations(v)
		validate = v
	})
	return validate
}

// RegisterValidations adds the checkout rules to another validator, such
// as gin's binding engine
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("card_expiry", validCardExpiry)
}

func validCardExpiry(fl validator.FieldLevel) bool {
	return expiryPattern.MatchString(fl.Field().String())
}

func validateForm(form any) error {
	if err := Validator().Struct(form); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	return nil
}

// Progress tracks one session's way through checkout
type Progress struct {
	Step     Step            `json:"step"`
	Contact  *ContactForm    `json:"contact,omitempty"`
	Shipping *ShippingForm   `json:"shipping,omitempty"`
	Payment  *PaymentSummary `json:"payment,omitempty"`
}

// NewProgress starts at the contact step
func NewProgress() Progress {
	return Progress{Step: StepContact}
}

// Current returns the active step; an unset progress is at the contact step
func (p *Progress) Current() Step {
	if p.Step < StepContact {
		return StepContact
	}
	if p.Step > StepReview {
		return StepReview
	}
	return p.Step
}

// SubmitContact records the contact form and moves to shipping
func (p *Progress) SubmitContact(form ContactForm) error {
	if err := p.require(StepContact); err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	p.Contact = &form
	p.Step = StepShipping
	return nil
}

// SubmitShipping records the address and moves to payment
func (p *Progress) SubmitShipping(form ShippingForm) error {
	if err := p.require(StepShipping); err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	p.Shipping = &form
	p.Step = StepPayment
	return nil
}

// SubmitPayment keeps the card's last four digits and holder name, then
// moves to review
func (p *Progress) SubmitPayment(form PaymentForm) error {
	if err := p.require(StepPayment); err != nil {
		return err
	}
	if err := validateForm(form); err != nil {
		return err
	}
	digits := strings.ReplaceAll(form.CardNumber, " ", "")
	p.Payment = &PaymentSummary{
		Last4:      digits[len(digits)-4:],
		NameOnCard: form.NameOnCard,
	}
	p.Step = StepReview
	return nil
}

// Back returns to the previous step, stopping at contact
func (p *Progress) Back() {
	if step := p.Current(); step > StepContact {
		p.Step = step - 1
		return
	}
	p.Step = StepContact
}

// Ready reports whether an order can be placed
func (p *Progress) Ready() bool {
	return p.Current() == StepReview && p.Contact != nil && p.Shipping != nil && p.Payment != nil
}

// Reset clears all forms
func (p *Progress) Reset() {
	*p = NewProgress()
}

func (p *Progress) require(step Step) error {
	if p.Current() < step {
		return fmt.Errorf("%w: %s requires completing the previous steps", ErrStepNotReached, step)
	}
	return nil
}
