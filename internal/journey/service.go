// Package journey stores a journey's roster and expenses as CSV files.
package journey

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/id"
	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/model"
)

const (
	peopleFile   = "people.csv"
	expensesFile = "expenses.csv"
)

var (
	ErrPersonNotFound  = errors.New("person not found")
	ErrDuplicatePerson = errors.New("person with that name already exists")
	ErrExpenseNotFound = errors.New("expense not found")
)

// Service provides access to one journey directory.
type Service struct {
	root      string
	journeyID string
}

// NewService creates a Service for the journey stored under root.
func NewService(root, journeyID string) *Service {
	return &Service{root: root, journeyID: journeyID}
}

// Root returns the journey directory.
func (s *Service) Root() string { return s.root }

// People returns the roster in file order.
func (s *Service) People() ([]model.Person, error) {
	path := filepath.Join(s.root, peopleFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening people %s: %w", path, err)
	}
	defer f.Close()

	people, err := ReadPeople(f)
	if err != nil {
		return nil, fmt.Errorf("reading people %s: %w", path, err)
	}
	return people, nil
}

// SavePeople rewrites people.csv.
func (s *Service) SavePeople(people []model.Person) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("creating journey dir: %w", err)
	}
	f, err := os.Create(filepath.Join(s.root, peopleFile))
	if err != nil {
		return fmt.Errorf("creating people file: %w", err)
	}
	defer f.Close()

	if err := WritePeople(f, people); err != nil {
		return fmt.Errorf("writing people: %w", err)
	}
	return nil
}

// AddPerson appends a new person to the roster. Names must be unique,
// ignoring case, so the text parser can resolve them.
func (s *Service) AddPerson(name, phone, email string) (model.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Person{}, errors.New("person name is required")
	}
	people, err := s.People()
	if err != nil {
		return model.Person{}, err
	}
	for _, p := range people {
		if strings.EqualFold(p.Name, name) {
			return model.Person{}, fmt.Errorf("%w: %q", ErrDuplicatePerson, name)
		}
	}

	p := model.Person{ID: id.NewPersonID(), Name: name, Phone: phone, Email: email}
	if err := s.SavePeople(append(people, p)); err != nil {
		return model.Person{}, err
	}
	slog.Debug("Person added", "person_id", p.ID, "name", p.Name)
	return p, nil
}

// Person resolves ref as a person ID or, failing that, a case-insensitive name.
func (s *Service) Person(ref string) (model.Person, error) {
	people, err := s.People()
	if err != nil {
		return model.Person{}, err
	}
	return Resolve(people, ref)
}

// Resolve finds ref in roster by ID, then by case-insensitive name.
func Resolve(roster []model.Person, ref string) (model.Person, error) {
	ref = strings.TrimSpace(ref)
	if p, ok := model.FindPerson(roster, ref); ok {
		return p, nil
	}
	for _, p := range roster {
		if strings.EqualFold(p.Name, ref) {
			return p, nil
		}
	}
	return model.Person{}, fmt.Errorf("%w: %q", ErrPersonNotFound, ref)
}

// Expenses returns all recorded expenses in file order.
func (s *Service) Expenses() ([]model.Expense, error) {
	path := filepath.Join(s.root, expensesFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening expenses %s: %w", path, err)
	}
	defer f.Close()

	expenses, err := ReadExpenses(f, s.journeyID)
	if err != nil {
		return nil, fmt.Errorf("reading expenses %s: %w", path, err)
	}
	slog.Debug("Expenses loaded", "path", path, "count", len(expenses))
	return expenses, nil
}

// AddExpenseParams holds parameters for recording one expense.
type AddExpenseParams struct {
	Date         time.Time
	Title        string
	Amount       decimal.Decimal
	PaidBy       string
	SplitBetween []string
	Category     string
	Description  string
}

// AddExpense validates and appends one expense. Returns the stored expense.
func (s *Service) AddExpense(params AddExpenseParams) (model.Expense, error) {
	added, err := s.AddExpenses([]model.Expense{{
		Title:        params.Title,
		Amount:       params.Amount,
		PaidBy:       params.PaidBy,
		SplitBetween: params.SplitBetween,
		Date:         params.Date,
		Category:     params.Category,
		Description:  params.Description,
	}})
	if err != nil {
		return model.Expense{}, err
	}
	return added[0], nil
}

// AddExpenses validates every expense against the ledger invariants and
// the roster, assigns IDs to those without one, and appends them all to
// expenses.csv. Amounts are rounded to cents before validation, so the
// stored amount is the validated one. Nothing is written if any expense is
// invalid.
func (s *Service) AddExpenses(expenses []model.Expense) ([]model.Expense, error) {
	if len(expenses) == 0 {
		return nil, nil
	}
	people, err := s.People()
	if err != nil {
		return nil, err
	}
	next, err := s.NextExpenseSeq()
	if err != nil {
		return nil, err
	}
	seq := id.NewSequence(next - 1)

	added := make([]model.Expense, len(expenses))
	for i, e := range expenses {
		if e.ID == "" {
			e.ID = seq.Next()
		}
		e.JourneyID = s.journeyID
		if e.Date.IsZero() {
			e.Date = time.Now()
		}
		e.Amount = ledger.RoundCents(e.Amount)
		if err := ledger.ValidateExpense(e); err != nil {
			return nil, err
		}
		if err := ledger.ValidateMembers(e, people); err != nil {
			return nil, err
		}
		added[i] = e
	}

	path := filepath.Join(s.root, expensesFile)
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return nil, fmt.Errorf("creating journey dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening expenses: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, ExpenseHeader); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendExpenses(f, added); err != nil {
		return nil, fmt.Errorf("appending expenses: %w", err)
	}
	slog.Debug("Expenses appended", "path", path, "count", len(added))
	return added, nil
}

// DeleteExpense removes the expense with the given ID.
func (s *Service) DeleteExpense(expenseID string) error {
	expenses, err := s.Expenses()
	if err != nil {
		return err
	}

	kept := expenses[:0]
	found := false
	for _, e := range expenses {
		if e.ID == expenseID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrExpenseNotFound, expenseID)
	}

	f, err := os.Create(filepath.Join(s.root, expensesFile))
	if err != nil {
		return fmt.Errorf("rewriting expenses: %w", err)
	}
	defer f.Close()

	if err := WriteExpenses(f, kept); err != nil {
		return fmt.Errorf("rewriting expenses: %w", err)
	}
	return nil
}

// NextExpenseSeq returns the next available expense sequence number.
func (s *Service) NextExpenseSeq() (int, error) {
	expenses, err := s.Expenses()
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, e := range expenses {
		seq, err := id.ParseExpenseID(e.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}
