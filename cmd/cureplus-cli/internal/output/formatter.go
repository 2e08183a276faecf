package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cureplus/website/internal/domain"
	"gopkg.in/yaml.v3"
)

// HospitalRow is one hospital as printed by the hospitals command.
type HospitalRow struct {
	ID           int    `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	PublicPath   string `json:"public_path"`
	InternalPath string `json:"internal_path"`
}

// RewriteDocument is the exported shape of the rewrite table.
type RewriteDocument struct {
	Rewrites []domain.Rewrite `json:"rewrites" yaml:"rewrites"`
}

// HospitalsTable writes rows as an aligned table.
func HospitalsTable(out io.Writer, rows []HospitalRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tSLUG\tNAME\tPUBLIC PATH\tINTERNAL PATH")
	fmt.Fprintln(w, "--\t----\t----\t-----------\t-------------")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Slug, truncateString(r.Name, 48), r.PublicPath, r.InternalPath)
	}
	return w.Flush()
}

// RewritesTable writes the rewrite table with one row per rule.
func RewritesTable(out io.Writer, rewrites []domain.Rewrite) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "SOURCE\tDESTINATION")
	fmt.Fprintln(w, "------\t-----------")
	for _, rw := range rewrites {
		fmt.Fprintf(w, "%s\t%s\n", rw.Source, rw.Destination)
	}
	return w.Flush()
}

// JSON writes v as indented JSON.
func JSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// YAML writes v as a YAML document.
func YAML(out io.Writer, v any) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// truncateString truncates a string to the specified length with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
