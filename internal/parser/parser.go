// Package parser turns informally written expense lines into drafts.
//
// Each non-empty line is matched, independently, against a fixed ordered
// list of grammars:
//
//	I owe <name> <amount> [currency]
//	<name> owes me <amount> [currency]
//	I paid <amount> [currency] for <description>
//	<name> paid <amount> [currency] for <description>
//	<amount> [currency] <description>
//
// The first grammar that matches wins. "I" and "me" are written into drafts
// as model.CurrentUser; see SubstituteCurrentUser.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/splitledger/splitledger/internal/ledger"
	"github.com/splitledger/splitledger/internal/model"
)

var (
	ErrUnknownPerson     = errors.New("person not found in participants")
	ErrUnrecognized      = errors.New("could not parse")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// LineError records why one input line produced no draft.
type LineError struct {
	Line int    // 1-based, counting non-empty lines
	Text string // the trimmed line
	Name string // unresolved person name, if any
	Err  error
}

func (e LineError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownPerson):
		return fmt.Sprintf("Line %d: person %q not found in participants", e.Line, e.Name)
	case errors.Is(e.Err, ErrUnrecognized):
		return fmt.Sprintf("Line %d: could not parse %q", e.Line, e.Text)
	default:
		return fmt.Sprintf("Line %d: %v", e.Line, e.Err)
	}
}

func (e LineError) Unwrap() error { return e.Err }

// Result holds the drafts and errors of one parse, each in line order.
type Result struct {
	Drafts []model.Draft
	Errors []LineError
}

// Messages returns the error strings in line order.
func (r Result) Messages() []string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return msgs
}

const (
	amountPattern   = `(\d+(?:\.\d+)?)`
	currencyPattern = `(?:rs|rupees|dollars?|\$)?`
	namePattern     = `([\p{L}\s]+?)`
)

// kind identifies which grammar a line matched.
type kind int

const (
	iOwe kind = iota
	owesMe
	iPaid
	namePaid
	bare
)

type grammar struct {
	kind kind
	re   *regexp.Regexp
}

// grammars are tried in order; the order decides ambiguous lines.
var grammars = []grammar{
	{iOwe, regexp.MustCompile(`(?i)^i\s+owe\s+` + namePattern + `\s+` + amountPattern + `\s*` + currencyPattern + `$`)},
	{owesMe, regexp.MustCompile(`(?i)^` + namePattern + `\s+owes?\s+me\s+` + amountPattern + `\s*` + currencyPattern + `$`)},
	{iPaid, regexp.MustCompile(`(?i)^i\s+paid\s+` + amountPattern + `\s*` + currencyPattern + `\s+for\s+(.+)$`)},
	{namePaid, regexp.MustCompile(`(?i)^` + namePattern + `\s+paid\s+` + amountPattern + `\s*` + currencyPattern + `\s+for\s+(.+)$`)},
	{bare, regexp.MustCompile(`(?i)^` + amountPattern + `\s*` + currencyPattern + `\s+(.+)$`)},
}

// Parse parses every non-empty line of text against the roster.
// It never fails as a whole: lines that cannot be turned into a draft are
// reported in Result.Errors and the rest are still parsed.
func Parse(text string, roster []model.Person) Result {
	names := make(map[string]model.Person, len(roster))
	for _, p := range roster {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if _, dup := names[key]; !dup {
			names[key] = p
		}
	}
	everyone := make([]string, 0, len(roster)+1)
	for _, p := range roster {
		everyone = append(everyone, p.ID)
	}
	everyone = append(everyone, model.CurrentUser)

	p := &lineParser{names: names, everyone: everyone}

	var res Result
	n := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		n++
		draft, err := p.parseLine(line)
		if err != nil {
			err.Line = n
			err.Text = line
			res.Errors = append(res.Errors, *err)
			continue
		}
		res.Drafts = append(res.Drafts, draft)
	}
	return res
}

type lineParser struct {
	names    map[string]model.Person
	everyone []string
}

func (p *lineParser) parseLine(line string) (model.Draft, *LineError) {
	for _, g := range grammars {
		m := g.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return p.build(g.kind, m)
	}
	return model.Draft{}, &LineError{Err: ErrUnrecognized}
}

func (p *lineParser) build(k kind, m []string) (model.Draft, *LineError) {
	var (
		name, amountStr, desc string
	)
	switch k {
	case iOwe, owesMe:
		name, amountStr = m[1], m[2]
	case iPaid, bare:
		amountStr, desc = m[1], m[2]
	case namePaid:
		name, amountStr, desc = m[1], m[2], m[3]
	}
	desc = strings.TrimSpace(desc)

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return model.Draft{}, &LineError{Err: fmt.Errorf("parsing amount %q: %w", amountStr, err)}
	}
	// Amounts are stored in cents; anything that rounds to zero is rejected.
	amount = ledger.RoundCents(amount)
	if !amount.IsPositive() {
		return model.Draft{}, &LineError{Err: ErrNonPositiveAmount}
	}

	var person model.Person
	if k == iOwe || k == owesMe || k == namePaid {
		name = strings.Join(strings.Fields(name), " ")
		var ok bool
		person, ok = p.names[strings.ToLower(name)]
		if !ok {
			return model.Draft{}, &LineError{Name: name, Err: ErrUnknownPerson}
		}
	}

	switch k {
	case iOwe:
		return model.Draft{
			Title:        "Owed to " + person.Name,
			Amount:       amount,
			PaidBy:       person.ID,
			SplitBetween: []string{model.CurrentUser},
			Description:  "Amount owed to " + person.Name,
		}, nil
	case owesMe:
		return model.Draft{
			Title:        "Owed by " + person.Name,
			Amount:       amount,
			PaidBy:       model.CurrentUser,
			SplitBetween: []string{person.ID},
			Description:  "Amount owed by " + person.Name,
		}, nil
	case iPaid:
		return p.shared(desc, amount, model.CurrentUser, "Paid for "+desc), nil
	case namePaid:
		return p.shared(desc, amount, person.ID, person.Name+" paid for "+desc), nil
	default:
		return p.shared(desc, amount, model.CurrentUser, desc), nil
	}
}

// shared builds a draft split between the whole roster and the current user.
func (p *lineParser) shared(title string, amount decimal.Decimal, paidBy, description string) model.Draft {
	return model.Draft{
		Title:        title,
		Amount:       amount,
		PaidBy:       paidBy,
		SplitBetween: append([]string(nil), p.everyone...),
		Category:     InferCategory(title),
		Description:  description,
	}
}
