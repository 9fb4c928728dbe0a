// Package priceimport reads delimited price sheets exported from spreadsheets.
package priceimport

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"
	"unicode"

	"branch-reservations/internal/pkg/errs"
	"branch-reservations/internal/usecase/commands"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrEmptySheet     = errs.New("price sheet is empty")
	ErrMissingColumns = errs.New("price sheet needs a code and a price column")
)

var (
	codeHeaders  = []string{"codigo", "cod", "code", "sku", "prod_codigo", "product_code"}
	priceHeaders = []string{"precio_unitario", "precio", "unit_price", "price", "valor", "importe"}
)

// Candidate delimiters in tie-break order.
var delimiters = []rune{';', ',', '\t'}

type SheetReader struct{}

func NewSheetReader() *SheetReader {
	return &SheetReader{}
}

func (s *SheetReader) Parse(r io.Reader) ([]commands.PriceRow, error) {
	br := bufio.NewReader(transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder())))

	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errs.Wrap(err, "failed to read price sheet header")
	}
	if strings.TrimSpace(header) == "" {
		return nil, ErrEmptySheet
	}

	cr := csv.NewReader(io.MultiReader(strings.NewReader(header), br))
	cr.Comma = detectDelimiter(header)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	keys, err := cr.Read()
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse price sheet header")
	}
	codeCols, priceCols := columnIndexes(keys, codeHeaders), columnIndexes(keys, priceHeaders)
	if len(codeCols) == 0 || len(priceCols) == 0 {
		return nil, ErrMissingColumns
	}

	var rows []commands.PriceRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(err, "failed to parse price sheet")
		}
		if blank(record) {
			continue
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, commands.PriceRow{
			Line:  line,
			Code:  firstField(record, codeCols),
			Price: firstField(record, priceCols),
		})
	}
	return rows, nil
}

func detectDelimiter(header string) rune {
	best, bestCount := delimiters[0], 0
	for _, d := range delimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// columnIndexes lists every column matching a synonym, in synonym order.
// Sheets may carry several synonyms and fill a different one per row.
func columnIndexes(keys []string, synonyms []string) []int {
	normalized := make([]string, len(keys))
	for i, k := range keys {
		normalized[i] = NormalizeHeader(k)
	}

	var cols []int
	for _, syn := range synonyms {
		for i, nk := range normalized {
			if nk == syn {
				cols = append(cols, i)
			}
		}
	}
	return cols
}

// NormalizeHeader lower-cases, folds accents and joins words with underscores: " Código Producto" -> "codigo_producto".
func NormalizeHeader(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(folded, "\ufeff")))
	return strings.Join(strings.Fields(folded), "_")
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// firstField is the first non-empty cell among cols.
func firstField(record []string, cols []int) string {
	for _, i := range cols {
		if v := field(record, i); v != "" {
			return v
		}
	}
	return ""
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
