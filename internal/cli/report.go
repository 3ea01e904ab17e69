package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// alphaLabel prefixes the reported statistic in text output.
const alphaLabel = "Cronbach's Alpha:"

// colorEnabled resolves the output.color setting for w. In auto mode color
// is used only when w is a terminal and NO_COLOR is unset.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// styles holds the lipgloss styles for one writer. Zero-value styles render
// plain text.
type styles struct {
	label    lipgloss.Style
	value    lipgloss.Style
	undef    lipgloss.Style
	dim      lipgloss.Style
	header   lipgloss.Style
	renderer *lipgloss.Renderer
}

func newStyles(w io.Writer, color bool) styles {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	r.SetColorProfile(profile)
	return styles{
		label:    r.NewStyle().Bold(true),
		value:    r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		undef:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		dim:      r.NewStyle().Foreground(lipgloss.Color("245")),
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).Padding(0, 1),
		renderer: r,
	}
}

// jsonFloat encodes finite values as JSON numbers and NaN or infinities as
// the strings "NaN", "+Inf" and "-Inf", which encoding/json cannot represent.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte(strconv.Quote(models.FormatFloat(v))), nil
	}
	return []byte(models.FormatFloat(v)), nil
}

type alphaJSON struct {
	Alpha                    jsonFloat `json:"alpha"`
	MeanInterItemCorrelation jsonFloat `json:"mean_inter_item_correlation"`
	Items                    int       `json:"items"`
	Respondents              int       `json:"respondents"`
	Pairs                    int       `json:"pairs"`
}

// renderAlpha writes res in the given format. Text output is a single
// labelled line unless verbose is set.
func renderAlpha(w io.Writer, res *models.AlphaResult, format string, color, verbose bool) error {
	switch format {
	case "json":
		return writeJSON(w, alphaJSON{
			Alpha:                    jsonFloat(res.Alpha),
			MeanInterItemCorrelation: jsonFloat(res.MeanInterItemCorrelation),
			Items:                    res.Items,
			Respondents:              res.Respondents,
			Pairs:                    res.Pairs,
		})
	case "yaml":
		return writeYAML(w, res)
	}

	st := newStyles(w, color)
	valueStyle := st.value
	if math.IsNaN(res.Alpha) || math.IsInf(res.Alpha, 0) {
		valueStyle = st.undef
	}
	if _, err := fmt.Fprintf(w, "%s %s\n", st.label.Render(alphaLabel), valueStyle.Render(models.FormatFloat(res.Alpha))); err != nil {
		return err
	}
	if !verbose {
		return nil
	}

	lines := [][2]string{
		{"Items:", strconv.Itoa(res.Items)},
		{"Respondents:", strconv.Itoa(res.Respondents)},
		{"Item pairs:", strconv.Itoa(res.Pairs)},
		{"Mean inter-item r:", models.FormatFloat(res.MeanInterItemCorrelation)},
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "  %s %s\n", st.dim.Render(fmt.Sprintf("%-18s", l[0])), l[1]); err != nil {
			return err
		}
	}
	return nil
}

type matrixJSON struct {
	Items  []string      `json:"items"`
	Matrix [][]jsonFloat `json:"matrix"`
}

type matrixYAML struct {
	Items  []string    `yaml:"items"`
	Matrix [][]float64 `yaml:"matrix"`
}

// renderMatrix writes the correlation matrix. Text output is a table with
// four decimals; JSON and YAML keep full precision.
func renderMatrix(w io.Writer, m *models.CorrelationMatrix, format string, color bool) error {
	switch format {
	case "json":
		out := matrixJSON{Items: m.Items(), Matrix: make([][]jsonFloat, m.Size())}
		for i := range out.Matrix {
			out.Matrix[i] = make([]jsonFloat, m.Size())
			for j := range out.Matrix[i] {
				out.Matrix[i][j] = jsonFloat(m.At(i, j))
			}
		}
		return writeJSON(w, out)
	case "yaml":
		return writeYAML(w, matrixYAML{Items: m.Items(), Matrix: m.Rows()})
	}

	st := newStyles(w, color)
	items := m.Items()
	rows := make([][]string, m.Size())
	for i := range rows {
		rows[i] = make([]string, m.Size()+1)
		rows[i][0] = items[i]
		for j := 0; j < m.Size(); j++ {
			rows[i][j+1] = strconv.FormatFloat(m.At(i, j), 'f', 4, 64)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.dim).
		Headers(append([]string{""}, items...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return st.header
			}
			return st.renderer.NewStyle().Padding(0, 1)
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
