package parser

import (
	"fmt"
	"strings"

	"github.com/splitledger/splitledger/internal/model"
)

// ExampleText returns help text showing every supported line format,
// using the first two roster names where available.
func ExampleText(roster []model.Person) string {
	names := []string{"amit", "priya"}
	for i := 0; i < len(roster) && i < 2; i++ {
		names[i] = strings.ToLower(roster[i].Name)
	}

	return fmt.Sprintf(`Examples of supported formats:

I owe %[1]s 100 rs
%[2]s owes me 50 rs
I paid 200 for dinner
%[1]s paid 150 for groceries
300 taxi ride
250 movie tickets

Supported currencies: rs, rupees, dollars, $
You can also omit currency symbols.
`, names[0], names[1])
}
