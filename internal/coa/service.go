package coa

import (
	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// Service provides in-memory lookup over a fetched chart-of-accounts
// snapshot. The snapshot is supplied by the persistence collaborator and is
// never mutated here.
type Service struct {
	accounts   []model.Account
	types      []model.AccountType
	byID       map[int]model.Account
	byCode     map[string]model.Account
	typeByID   map[int]model.AccountType
	typeByCode map[string]model.AccountType
	childCount map[int]int
}

// NewService creates a Service from snapshot slices.
func NewService(accounts []model.Account, types []model.AccountType) *Service {
	s := &Service{
		accounts:   accounts,
		types:      types,
		byID:       make(map[int]model.Account, len(accounts)),
		byCode:     make(map[string]model.Account, len(accounts)),
		typeByID:   make(map[int]model.AccountType, len(types)),
		typeByCode: make(map[string]model.AccountType, len(types)),
		childCount: make(map[int]int),
	}
	for _, a := range accounts {
		s.byID[a.ID] = a
		s.byCode[a.Code] = a
		if a.ParentID != 0 {
			s.childCount[a.ParentID]++
		}
	}
	for _, t := range types {
		s.typeByID[t.ID] = t
		s.typeByCode[t.Code] = t
	}
	return s
}

// All returns all accounts in the snapshot.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id int) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// GetByCode returns an account by its code.
func (s *Service) GetByCode(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id int) bool {
	_, ok := s.byID[id]
	return ok
}

// TypeByCode returns an account type by its code (ASSET, LIAB, INC, EXP).
func (s *Service) TypeByCode(code string) (model.AccountType, bool) {
	t, ok := s.typeByCode[code]
	return t, ok
}

// TypeByID returns an account type by ID.
func (s *Service) TypeByID(id int) (model.AccountType, bool) {
	t, ok := s.typeByID[id]
	return t, ok
}

// IsLeaf reports whether an account has no children. Only leaf accounts may
// receive postings.
func (s *Service) IsLeaf(id int) bool {
	return s.childCount[id] == 0
}

// Children returns the accounts whose parent is the given account.
func (s *Service) Children(parentID int) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.ParentID == parentID {
			result = append(result, a)
		}
	}
	return result
}

// TopLevelByType returns the top-level accounts of the given type.
func (s *Service) TopLevelByType(typeID int) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.ParentID == 0 && a.AccountTypeID == typeID {
			result = append(result, a)
		}
	}
	return result
}

// LeafByTypeCode returns the active leaf accounts of the given type code,
// the set eligible as posting targets for that type.
func (s *Service) LeafByTypeCode(code string) []model.Account {
	t, ok := s.typeByCode[code]
	if !ok {
		return nil
	}
	var result []model.Account
	for _, a := range s.accounts {
		if a.AccountTypeID != t.ID || !a.IsActive || !s.IsLeaf(a.ID) {
			continue
		}
		result = append(result, a)
	}
	return result
}

// ActiveLeaves returns every active leaf account regardless of type.
func (s *Service) ActiveLeaves() []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.IsActive && s.IsLeaf(a.ID) {
			result = append(result, a)
		}
	}
	return result
}
