package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"cdms/internal/dto"
	apperrors "cdms/internal/errors"
	"cdms/internal/models"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	minSeedPurchase = 10.0
	maxSeedPurchase = 5000.0
	MaxSeedCount    = 10000
)

var seedEmailDomains = []string{"example.com", "example.org", "example.net"}

type customerSeeder struct {
	customerService CustomerServiceInterface
	faker           *gofakeit.Faker
}

// NewCustomerSeeder creates a seeder that stores generated customers
// through customerService. A zero seed picks a random one.
func NewCustomerSeeder(customerService CustomerServiceInterface, seed uint64) CustomerSeederInterface {
	return &customerSeeder{
		customerService: customerService,
		faker:           gofakeit.New(seed),
	}
}

// Seed creates count customers and returns them in creation order. It stops
// at the first failure and returns what was created so far.
func (s *customerSeeder) Seed(ctx context.Context, count int) ([]*models.Customer, error) {
	if count < 1 || count > MaxSeedCount {
		return nil, apperrors.New(apperrors.ValidationOutOfRange,
			fmt.Sprintf("count: must be between 1 and %d, got %d", MaxSeedCount, count))
	}

	created := make([]*models.Customer, 0, count)
	for i := 0; i < count; i++ {
		customer, err := s.customerService.CreateCustomer(ctx, s.fakeRequest())
		if err != nil {
			return created, fmt.Errorf("failed to seed customer %d of %d: %w", i+1, count, err)
		}
		created = append(created, customer)
	}
	return created, nil
}

func (s *customerSeeder) fakeRequest() *dto.CustomerRequest {
	first := s.faker.FirstName()
	last := s.faker.LastName()

	return &dto.CustomerRequest{
		FirstName:      first,
		LastName:       last,
		Email:          s.fakeEmail(first, last),
		Phone:          s.faker.Numerify("##########"),
		State:          s.faker.StateAbr(),
		PurchaseAmount: fmt.Sprintf("%.2f", s.faker.Float64Range(minSeedPurchase, maxSeedPurchase)),
	}
}

// fakeEmail builds first.last###@domain from the letters and digits of the
// generated names so the address always passes the email rule
func (s *customerSeeder) fakeEmail(first, last string) string {
	local := emailSafe(first) + "." + emailSafe(last) + s.faker.Numerify("###")
	return strings.Trim(local, ".") + "@" + s.faker.RandomString(seedEmailDomains)
}

func emailSafe(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "customer"
	}
	return b.String()
}
