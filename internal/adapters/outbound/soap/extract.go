package soap

import (
	"math"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/cssbridge/cssbridge/internal/domain"
)

const (
	envelopeNS  = "http://www.w3.org/2003/05/soap-envelope"
	validatorNS = "http://www.w3.org/2005/07/css-validator"
)

var namespaces = map[string]string{
	"env": envelopeNS,
	"m":   validatorNS,
}

func mustCompile(expr string) *xpath.Expr {
	e, err := xpath.CompileWithNS(expr, namespaces)
	if err != nil {
		panic("soap: compiling " + expr + ": " + err.Error())
	}
	return e
}

// extractor performs typed lookups relative to one node. Every accessor
// falls back to its default when the path matches nothing.
type extractor struct {
	node *xmlquery.Node
}

// get returns the text of the first node matching expr.
func (x extractor) get(expr *xpath.Expr) (string, bool) {
	n := xmlquery.QuerySelector(x.node, expr)
	if n == nil {
		return "", false
	}
	return n.InnerText(), true
}

func (x extractor) getString(expr *xpath.Expr) string {
	s, _ := x.get(expr)
	return s
}

func (x extractor) getTrimmed(expr *xpath.Expr) string {
	return strings.TrimSpace(x.getString(expr))
}

func (x extractor) getInt(expr *xpath.Expr, def int) int {
	s, ok := x.get(expr)
	if !ok {
		return def
	}
	return leadingInt(s)
}

func (x extractor) getBool(expr *xpath.Expr, def bool) bool {
	s, ok := x.get(expr)
	if !ok {
		return def
	}
	return domain.Truthy(s)
}

// leadingInt parses the optional sign and digits at the start of s, after
// trimming whitespace. Anything that is not a number yields 0. Values out of
// range saturate at math.MaxInt or math.MinInt.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if neg {
			if n < (math.MinInt+d)/10 {
				return math.MinInt
			}
			n = n*10 - d
			continue
		}
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}
