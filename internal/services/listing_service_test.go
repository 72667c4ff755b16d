package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/pricing"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func addPhone(t *testing.T, r *repos.PhoneRepo, p domain.Phone) domain.Phone {
	t.Helper()
	if err := r.Create(p); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestAttemptListsSeededPhoneOnX(t *testing.T) {
	db := memdb(t)
	phones := repos.NewPhoneRepo(db)
	svc := services.NewListingService(phones)

	// The seeded sample: base 400, Good, stock 5.
	outcome, platform, err := svc.Attempt("ph-sample-001", "X")
	if err != nil {
		t.Fatal(err)
	}
	if platform != domain.PlatformX {
		t.Fatalf("want platform X, got %s", platform)
	}
	if outcome.Status != domain.StatusListed {
		t.Fatalf("want listed, got %+v", outcome)
	}
	if outcome.Price != 444.44 {
		t.Fatalf("want price 444.44, got %v", outcome.Price)
	}
	if outcome.ConditionMapped != "Good" {
		t.Fatalf("want condition Good, got %q", outcome.ConditionMapped)
	}

	// Outcome is persisted on the phone.
	p, err := phones.Get("ph-sample-001")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Listings[domain.PlatformX]; got != outcome {
		t.Fatalf("stored outcome %+v != returned %+v", got, outcome)
	}
}

func TestAttemptPlatformCaseInsensitive(t *testing.T) {
	db := memdb(t)
	svc := services.NewListingService(repos.NewPhoneRepo(db))

	_, platform, err := svc.Attempt("ph-sample-001", " z ")
	if err != nil {
		t.Fatal(err)
	}
	if platform != domain.PlatformZ {
		t.Fatalf("want Z, got %s", platform)
	}
}

func TestAttemptUnknownPlatformRecordsNothing(t *testing.T) {
	db := memdb(t)
	phones := repos.NewPhoneRepo(db)
	svc := services.NewListingService(phones)

	_, _, err := svc.Attempt("ph-sample-001", "Q")
	if !errors.Is(err, pricing.ErrUnknownPlatform) {
		t.Fatalf("want ErrUnknownPlatform, got %v", err)
	}
	p, _ := phones.Get("ph-sample-001")
	if len(p.Listings) != 0 {
		t.Fatalf("no outcome should be recorded, got %+v", p.Listings)
	}
}

func TestDecideCheckOrder(t *testing.T) {
	base := domain.Phone{
		ID: "p1", Brand: "A", Model: "B",
		Condition: domain.ConditionGood, BasePrice: 100, Stock: 5,
	}

	t.Run("zero stock", func(t *testing.T) {
		p := base
		p.Stock = 0
		got := services.Decide(p, domain.PlatformX)
		if got.Status != domain.StatusFailed || got.Reason != "Out of stock." {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("out of stock tag beats positive stock", func(t *testing.T) {
		p := base
		p.Tags = "Hot item, OUT OF STOCK soon"
		got := services.Decide(p, domain.PlatformX)
		if got.Reason != "Out of stock." {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("discontinued tag", func(t *testing.T) {
		p := base
		p.Tags = "Discontinued item"
		got := services.Decide(p, domain.PlatformX)
		if got.Status != domain.StatusFailed || got.Reason != "Product discontinued." {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("stock check precedes discontinued", func(t *testing.T) {
		p := base
		p.Stock = 0
		p.Tags = "discontinued"
		got := services.Decide(p, domain.PlatformX)
		if got.Reason != "Out of stock." {
			t.Fatalf("stock must be checked first, got %+v", got)
		}
	})

	t.Run("unsupported condition", func(t *testing.T) {
		p := base
		p.Condition = domain.ConditionScrap
		got := services.Decide(p, domain.PlatformZ)
		if got.Reason != "Condition 'Scrap' unsupported on Z." {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("listed with computed price", func(t *testing.T) {
		got := services.Decide(base, domain.PlatformX)
		if got.Status != domain.StatusListed || got.Price != 111.11 || got.ConditionMapped != "Good" {
			t.Fatalf("got %+v", got)
		}
	})
}

func TestDecideOverrideBypassesCalculator(t *testing.T) {
	p := domain.Phone{
		ID: "p1", Brand: "A", Model: "B",
		Condition: domain.ConditionGood, BasePrice: 100, Stock: 3,
		PriceOverrides: domain.OverrideMap{domain.PlatformX: 120},
	}
	got := services.Decide(p, domain.PlatformX)
	if got.Status != domain.StatusListed || got.Price != 120 {
		t.Fatalf("override price must win, got %+v", got)
	}

	// The override is still subject to the profitability ceiling.
	p.PriceOverrides[domain.PlatformX] = 130
	got = services.Decide(p, domain.PlatformX)
	if got.Status != domain.StatusFailed || got.Reason != "Unprofitable due to high fees/markup." {
		t.Fatalf("got %+v", got)
	}
}

func TestDecideUnprofitableZeroBase(t *testing.T) {
	// Base 0 on Y computes a positive price, but a non-positive base is never
	// profitable.
	p := domain.Phone{
		ID: "p1", Brand: "A", Model: "B",
		Condition: domain.ConditionNew, BasePrice: 0, Stock: 1,
	}
	got := services.Decide(p, domain.PlatformY)
	if got.Status != domain.StatusFailed || got.Reason != "Unprofitable due to high fees/markup." {
		t.Fatalf("got %+v", got)
	}
}

func TestAttemptReplacesPriorOutcome(t *testing.T) {
	db := memdb(t)
	phones := repos.NewPhoneRepo(db)
	svc := services.NewListingService(phones)

	p := addPhone(t, phones, domain.Phone{
		ID: "p-replace", Brand: "A", Model: "B",
		Condition: domain.ConditionGood, BasePrice: 100, Stock: 0,
	})

	out1, _, err := svc.Attempt(p.ID, "X")
	if err != nil {
		t.Fatal(err)
	}
	if out1.Reason != "Out of stock." {
		t.Fatalf("got %+v", out1)
	}

	// Restock and retry: the failed outcome is replaced, not accumulated.
	stored, _ := phones.Get(p.ID)
	stored.Stock = 2
	if err := phones.UpdateFields(stored); err != nil {
		t.Fatal(err)
	}
	out2, _, err := svc.Attempt(p.ID, "X")
	if err != nil {
		t.Fatal(err)
	}
	if out2.Status != domain.StatusListed {
		t.Fatalf("got %+v", out2)
	}

	final, _ := phones.Get(p.ID)
	if len(final.Listings) != 1 {
		t.Fatalf("want exactly one outcome for X, got %+v", final.Listings)
	}
	if final.Listings[domain.PlatformX] != out2 {
		t.Fatalf("latest outcome must win, got %+v", final.Listings[domain.PlatformX])
	}

	// Identical state, identical outcome.
	out3, _, err := svc.Attempt(p.ID, "X")
	if err != nil {
		t.Fatal(err)
	}
	if out3 != out2 {
		t.Fatalf("decision must be deterministic: %+v vs %+v", out2, out3)
	}
}

func TestUpdateOverrides(t *testing.T) {
	db := memdb(t)
	phones := repos.NewPhoneRepo(db)
	svc := services.NewListingService(phones)

	p := addPhone(t, phones, domain.Phone{
		ID: "p-ovr", Brand: "A", Model: "B",
		Condition: domain.ConditionGood, BasePrice: 100, Stock: 2,
	})

	errs, err := svc.UpdateOverrides(p.ID, map[domain.Platform]string{
		domain.PlatformX: " 119.999 ",
		domain.PlatformY: "",
	})
	if err != nil || len(errs) != 0 {
		t.Fatalf("errs=%v err=%v", errs, err)
	}
	got, _ := phones.Get(p.ID)
	if got.PriceOverrides[domain.PlatformX] != 120.00 {
		t.Fatalf("override should be rounded to cents, got %v", got.PriceOverrides)
	}

	// Empty value removes an existing override.
	errs, err = svc.UpdateOverrides(p.ID, map[domain.Platform]string{domain.PlatformX: ""})
	if err != nil || len(errs) != 0 {
		t.Fatalf("errs=%v err=%v", errs, err)
	}
	got, _ = phones.Get(p.ID)
	if _, ok := got.PriceOverrides[domain.PlatformX]; ok {
		t.Fatalf("override should be removed, got %v", got.PriceOverrides)
	}

	// Invalid values reject the submission and leave state untouched.
	errs, err = svc.UpdateOverrides(p.ID, map[domain.Platform]string{domain.PlatformX: "95"})
	if err != nil || len(errs) != 0 {
		t.Fatalf("errs=%v err=%v", errs, err)
	}
	errs, err = svc.UpdateOverrides(p.ID, map[domain.Platform]string{
		domain.PlatformX: "not-a-price",
		domain.PlatformY: "-3",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) != 2 {
		t.Fatalf("want 2 input errors, got %v", errs)
	}
	got, _ = phones.Get(p.ID)
	if got.PriceOverrides[domain.PlatformX] != 95 || len(got.PriceOverrides) != 1 {
		t.Fatalf("state must be unchanged on invalid input, got %v", got.PriceOverrides)
	}
}
