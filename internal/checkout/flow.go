package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/velvetglow/storefront/internal/cart"
	"github.com/velvetglow/storefront/internal/config"
	appErrors "github.com/velvetglow/storefront/internal/errors"
	"github.com/velvetglow/storefront/internal/models"
)

type State string

const (
	StateIdle        State = "IDLE"
	StateSummaryOpen State = "SUMMARY_OPEN"
	StateSubmitting  State = "SUBMITTING"
	StateSuccess     State = "SUCCESS"
)

func (s State) String() string {
	return string(s)
}

// TaxRate is the fixed tax applied to the subtotal at submission. Rounding
// to two decimals happens at display only.
const TaxRate = 0.08

// SleepFunc stands in for the simulated processing wait so tests can run
// the flow without wall-clock delays.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Flow is the checkout state machine:
// Idle → SummaryOpen → Submitting → Success → Idle, with SummaryOpen → Idle
// on cancel. Processing is simulated; the fabricated order cannot fail once
// validation has passed.
type Flow struct {
	cart            *cart.Store
	validate        *validator.Validate
	sanitizer       *bluemonday.Policy
	sleep           SleepFunc
	processingDelay time.Duration
	redirectDelay   time.Duration

	mu    sync.Mutex
	state State
}

type Option func(*Flow)

// WithSleep replaces the processing wait, for tests.
func WithSleep(sleep SleepFunc) Option {
	return func(f *Flow) {
		f.sleep = sleep
	}
}

func NewFlow(cartStore *cart.Store, cfg *config.Checkout, opts ...Option) *Flow {

	f := &Flow{
		cart:            cartStore,
		validate:        validator.New(),
		sanitizer:       bluemonday.StrictPolicy(),
		sleep:           sleepContext,
		processingDelay: cfg.ProcessingDelay,
		redirectDelay:   cfg.RedirectDelay,
		state:           StateIdle,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Flow) State() State {

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// RedirectDelay is how long the confirmation stays up before navigating
// back to the catalog entry point.
func (f *Flow) RedirectDelay() time.Duration {
	return f.redirectDelay
}

// OpenSummary transitions Idle → SummaryOpen. An empty cart keeps the flow
// Idle and surfaces a transient notice to the caller.
func (f *Flow) OpenSummary() error {

	if f.cart.ItemCount() == 0 {
		return appErrors.CartEmptyError("Your cart is empty")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = StateSummaryOpen

	return nil
}

// Cancel closes the summary without submitting.
func (f *Flow) Cancel() {

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSummaryOpen {
		f.state = StateIdle
	}
}

// Reset returns the flow to Idle after the confirmation has been served,
// the equivalent of leaving the page.
func (f *Flow) Reset() {

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSuccess {
		f.state = StateIdle
	}
}

// Submit validates the form fields, fabricates the order record from the
// current cart, waits out the simulated processing delay, clears the cart
// and transitions to Success. There is no partial-failure path once
// validation has passed.
func (f *Flow) Submit(ctx context.Context, req *models.CheckoutRequest) (*models.OrderRecord, error) {

	f.mu.Lock()

	if f.state != StateSummaryOpen {
		f.mu.Unlock()
		return nil, appErrors.BadRequestError("Checkout summary is not open")
	}

	if err := f.validate.Struct(req); err != nil {
		f.mu.Unlock()
		return nil, appErrors.ValidationError("Missing or invalid checkout fields").WithError(err)
	}

	f.state = StateSubmitting
	f.mu.Unlock()

	order := f.buildOrder(req)

	if err := f.sleep(ctx, f.processingDelay); err != nil {
		// Abandoned mid-delay; the cart stays intact.
		f.mu.Lock()
		f.state = StateSummaryOpen
		f.mu.Unlock()

		return nil, appErrors.InternalError("Checkout abandoned").WithError(err)
	}

	if err := f.cart.Clear(ctx); err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.state = StateSuccess
	f.mu.Unlock()

	return order, nil
}

// buildOrder snapshots the cart and customer fields at submission time.
// Free-text fields are sanitized before they can reach confirmation HTML.
func (f *Flow) buildOrder(req *models.CheckoutRequest) *models.OrderRecord {

	subtotal := f.cart.Total()
	tax := subtotal * TaxRate

	return &models.OrderRecord{
		ID: uuid.NewString(),
		Customer: models.Customer{
			FullName: f.sanitizer.Sanitize(req.FullName),
			Email:    f.sanitizer.Sanitize(req.Email),
			Phone:    f.sanitizer.Sanitize(req.Phone),
			Address: models.Address{
				Street: f.sanitizer.Sanitize(req.Street),
				City:   f.sanitizer.Sanitize(req.City),
				State:  f.sanitizer.Sanitize(req.State),
				Zip:    f.sanitizer.Sanitize(req.Zip),
			},
		},
		Items:    f.cart.Lines(),
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
		PlacedAt: time.Now().UTC(),
	}
}
