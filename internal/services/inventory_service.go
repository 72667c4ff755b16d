package services

import (
	"strings"

	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/domain"
	"github.com/HARIGUTTI2002/refurbished-phone-app/internal/repos"
)

// InventoryService answers dashboard queries over the phone inventory.
type InventoryService struct {
	Phones *repos.PhoneRepo
}

func NewInventoryService(phones *repos.PhoneRepo) *InventoryService {
	return &InventoryService{Phones: phones}
}

// Browse filters the inventory by an optional brand/model substring, exact
// condition, and "currently listed on platform". Unknown filter values are
// ignored rather than erroring, matching form semantics.
func (s *InventoryService) Browse(q, cond, platform string) ([]domain.Phone, error) {
	q = strings.ToLower(strings.TrimSpace(q))

	var condition domain.Condition
	if c := strings.TrimSpace(cond); domain.ValidCondition(c) {
		condition = domain.Condition(c)
	}

	phones, err := s.Phones.List(q, condition)
	if err != nil {
		return nil, err
	}

	p, ok := domain.ParsePlatform(platform)
	if !ok {
		return phones, nil
	}
	filtered := phones[:0]
	for _, phone := range phones {
		if l, found := phone.Listings[p]; found && l.Status == domain.StatusListed {
			filtered = append(filtered, phone)
		}
	}
	return filtered, nil
}
