// Package latex sanity-checks recognized formulas.
//
// The desktop application renders whatever LaTeX the bridge returns, so a
// recognition that produces unparseable markup is worth flagging early. The
// check converts the formula to MathML via goldmark's treeblood extension;
// it is advisory only and never alters the recognized string or the JSON
// result.
package latex

import (
	"bytes"
	"fmt"
	"strings"

	treeblood "github.com/wyatt915/goldmark-treeblood"
	"github.com/yuin/goldmark"
)

// Check attempts to convert a LaTeX formula to MathML and reports whether
// the conversion produced math output.
func Check(formula string) error {
	// Wrap in display math delimiters for goldmark processing.
	source := "$$" + formula + "$$"

	md := goldmark.New(
		goldmark.WithExtensions(
			treeblood.MathML(),
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return fmt.Errorf("formula does not parse as TeX math: %w", err)
	}

	if !strings.Contains(buf.String(), "<math") {
		return fmt.Errorf("formula produced no math output")
	}

	return nil
}
