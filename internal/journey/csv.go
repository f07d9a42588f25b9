package journey

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/model"
)

// ExpenseHeader is the CSV header for expenses.csv.
const ExpenseHeader = "expense_id,date,title,amount,paid_by,split_between,category,description"

// PeopleHeader is the CSV header for people.csv.
const PeopleHeader = "person_id,name,phone,email"

const (
	numExpenseFields = 8
	dateFormat       = "2006-01-02"
	splitSep         = ";"
	colExpID         = 0
	colDate          = 1
	colTitle         = 2
	colAmount        = 3
	colPaidBy        = 4
	colSplit         = 5
	colCategory      = 6
	colDesc          = 7
)

const (
	numPersonFields = 4
	colPersonID     = 0
	colName         = 1
	colPhone        = 2
	colEmail        = 3
)

// ReadExpenses reads all expenses from an expenses.csv reader.
func ReadExpenses(r io.Reader, journeyID string) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numExpenseFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var expenses []model.Expense
	for i, rec := range records[1:] {
		e, err := UnmarshalExpense(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		e.JourneyID = journeyID
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// WriteExpenses writes expenses to an expenses.csv writer (including header).
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ExpenseHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendExpenses appends expenses to an existing expenses.csv writer (no header).
func AppendExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numExpenseFields)
	row[colExpID] = e.ID
	row[colDate] = e.Date.Format(dateFormat)
	row[colTitle] = e.Title
	row[colAmount] = e.Amount.StringFixed(2)
	row[colPaidBy] = e.PaidBy
	row[colSplit] = strings.Join(e.SplitBetween, splitSep)
	row[colCategory] = e.Category
	row[colDesc] = e.Description
	return row
}

// UnmarshalExpense converts a CSV row to an Expense.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) != numExpenseFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numExpenseFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	var split []string
	if record[colSplit] != "" {
		split = strings.Split(record[colSplit], splitSep)
	}

	return model.Expense{
		ID:           record[colExpID],
		Date:         date,
		Title:        record[colTitle],
		Amount:       amount,
		PaidBy:       record[colPaidBy],
		SplitBetween: split,
		Category:     record[colCategory],
		Description:  record[colDesc],
	}, nil
}

// ReadPeople reads people.csv.
func ReadPeople(r io.Reader) ([]model.Person, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numPersonFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading people CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var people []model.Person
	for i, rec := range records[1:] {
		people = append(people, model.Person{
			ID:    rec[colPersonID],
			Name:  rec[colName],
			Phone: rec[colPhone],
			Email: rec[colEmail],
		})
		if people[i].ID == "" {
			return nil, fmt.Errorf("row %d: empty person_id", i+2)
		}
	}
	return people, nil
}

// WritePeople writes people.csv.
func WritePeople(w io.Writer, people []model.Person) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(PeopleHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range people {
		row := make([]string, numPersonFields)
		row[colPersonID] = p.ID
		row[colName] = p.Name
		row[colPhone] = p.Phone
		row[colEmail] = p.Email
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
