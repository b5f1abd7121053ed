// Command card_gen writes a sample batch file with Luhn-valid cards of every
// supported brand, optionally mixed with expired and unsupported cards, and
// can submit it to a processor running in server mode.
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alovak/cardflow-batch/internal/batchclient"
	"github.com/alovak/cardflow-batch/internal/cardgen"
	"github.com/alovak/cardflow-batch/internal/expiry"
)

var (
	flagCount    = flag.Int("count", 10, "number of valid cards")
	flagExpired  = flag.Int("expired", 0, "number of expired cards to mix in")
	flagInvalid  = flag.Int("invalid", 0, "number of unsupported card numbers to mix in")
	flagYears    = flag.Int("years", 3, "validity years for valid cards")
	flagMaxCents = flag.Int64("max-cents", 100000, "upper bound for amounts, in cents")
	flagOut      = flag.String("out", "", "output file (default stdout)")
	flagSubmit   = flag.String("submit", "", "processor base URL; submits the batch instead of writing it")
	flagJSON     = flag.Bool("json", false, "ask the processor for JSON totals")
)

var header = []string{"Name", "Card Number", "CCV", "Zip Code", "Expiration Date", "Amount (in cents)", "Card Type"}

type product struct {
	brand  string
	bin    string
	length int
	cvv    int
}

var products = []product{
	{"Visa", "424242", 16, 3},
	{"Mastercard", "520082", 16, 3},
	{"AmEx", "371449", 15, 4},
}

var owners = []string{"adaline george", "griffin  byers", "keeleigh mackie", "violet snider", "  aurelio\tpassos"}

func main() {
	flag.Parse()
	if *flagCount < 0 || *flagExpired < 0 || *flagInvalid < 0 {
		fail("counts must not be negative")
	}
	if *flagMaxCents <= 0 {
		fail("-max-cents must be positive")
	}

	now := time.Now()
	rows := [][]string{header}
	for i := 0; i < *flagCount; i++ {
		p := products[i%len(products)]
		rows = append(rows, row(p, newPAN(p.bin, p.length), expiry.CardFace(now, *flagYears)))
	}
	for i := 0; i < *flagExpired; i++ {
		p := products[i%len(products)]
		rows = append(rows, row(p, newPAN(p.bin, p.length), expiry.CardFace(now, -1)))
	}
	for i := 0; i < *flagInvalid; i++ {
		// Discover numbers are not a supported brand.
		rows = append(rows, row(product{"Discover", "601111", 16, 3}, newPAN("601111", 16), expiry.CardFace(now, *flagYears)))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	must(w.WriteAll(rows))

	if *flagSubmit != "" {
		submit(buf.Bytes())
		return
	}

	if *flagOut == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	must(os.WriteFile(*flagOut, buf.Bytes(), 0o600))
	fmt.Fprintf(os.Stderr, "wrote %d cards to %s\n", len(rows)-1, *flagOut)
}

func newPAN(bin string, length int) string {
	pan, err := cardgen.GeneratePAN(bin, length, "")
	must(err)
	if !cardgen.LuhnValid(pan) {
		fail("generated PAN %s fails luhn check", cardgen.MaskPAN(pan))
	}
	return pan
}

func row(p product, pan, exp string) []string {
	name := normalizeCardName(owners[rand.Intn(len(owners))])
	cvv := fmt.Sprintf("%0*d", p.cvv, rand.Intn(pow10(p.cvv)))
	zip := fmt.Sprintf("%05d", rand.Intn(100000))
	amount := strconv.FormatInt(rand.Int63n(*flagMaxCents)+1, 10)
	return []string{name, pan, cvv, zip, exp, amount, p.brand}
}

func submit(batch []byte) {
	cli := batchclient.New(*flagSubmit, &http.Client{Timeout: 30 * time.Second})
	ctx := context.Background()
	if *flagJSON {
		totals := must1(cli.SubmitTotals(ctx, batch))
		fmt.Printf("batch %s: %d payments, $%s\n", totals.BatchID, totals.TotalPayments, totals.TotalAmount)
		for _, b := range totals.Brands {
			fmt.Printf("  %s: $%s\n", b.Brand, b.Amount)
		}
		return
	}
	fmt.Print(must1(cli.SubmitReport(ctx, batch)))
}

func normalizeCardName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	normalized := strings.Join(strings.Fields(trimmed), " ")
	up := strings.ToUpper(normalized)
	if len(up) > 26 {
		return up[:26]
	}
	return up
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}

func must(err error) {
	if err != nil {
		fail("%v", err)
	}
}
func must1[T any](v T, err error) T {
	if err != nil {
		fail("%v", err)
	}
	return v
}
func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
