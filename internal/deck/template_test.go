package deck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]string
		want     string
	}{
		{
			name:     "bare placeholder",
			template: "tf = $TF * units.seconds",
			params:   map[string]string{"TF": "280.000000"},
			want:     "tf = 280.000000 * units.seconds",
		},
		{
			name:     "braced placeholder",
			template: "power = ${POWER_TOT} * units.watt",
			params:   map[string]string{"POWER_TOT": "4.720000e+07"},
			want:     "power = 4.720000e+07 * units.watt",
		},
		{
			name:     "repeated placeholder",
			template: "$TF $TF",
			params:   map[string]string{"TF": "1.000000"},
			want:     "1.000000 1.000000",
		},
		{
			name:     "dollar escape",
			template: "cost = $$5, tf = $TF",
			params:   map[string]string{"TF": "2.000000"},
			want:     "cost = $5, tf = 2.000000",
		},
		{
			name:     "extra mapping entries ignored",
			template: "tf = $TF",
			params:   map[string]string{"TF": "3.000000", "UNUSED": "9"},
			want:     "tf = 3.000000",
		},
		{
			name:     "no placeholders",
			template: "nsteps = 5000\n",
			params:   map[string]string{},
			want:     "nsteps = 5000\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.template, tt.params)
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderMissingParameter(t *testing.T) {
	_, err := Render("start = $T_RAMP_START, end = $T_RAMP_END", map[string]string{
		"T_RAMP_START": "80.000000",
	})
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("Render() error = %v, want ErrMissingParameter", err)
	}
	if !strings.Contains(err.Error(), "T_RAMP_END") {
		t.Errorf("error should name the unresolved placeholder, got: %v", err)
	}
}

func TestRenderVariantMismatch(t *testing.T) {
	// A bias-variant template rendered with bias-less parameters must fail
	// rather than leave literal placeholder syntax in the deck.
	template := "rho_bias = $RHO_BIAS_PCM * units.pcm\ndelta_rho = $DELTA_RHO_PCM * units.pcm\n"
	_, err := Render(template, map[string]string{"DELTA_RHO": "480.000000"})
	if !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("Render() error = %v, want ErrMissingParameter", err)
	}
}

func TestRenderIdempotent(t *testing.T) {
	template := "tf = $TF\npower = ${POWER_TOT}\n"
	params := map[string]string{"TF": "280.000000", "POWER_TOT": "4.720000e+07"}

	first, err := Render(template, params)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	second, err := Render(template, params)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if first != second {
		t.Errorf("repeated rendering differs:\n%q\n%q", first, second)
	}
}

func TestRenderLeavesNoPlaceholderSyntax(t *testing.T) {
	template := "a = $A\nb = ${B}\nc = $A\n"
	out, err := Render(template, map[string]string{"A": "1", "B": "2"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := Placeholders(out); len(got) != 0 {
		t.Errorf("rendered output still references placeholders: %v", got)
	}
}

func TestPlaceholders(t *testing.T) {
	template := "tf = $TF\nstart = ${T_RAMP_START}\nagain = $TF\nescape = $$\n"
	got := Placeholders(template)
	want := []string{"TF", "T_RAMP_START"}
	if len(got) != len(want) {
		t.Fatalf("Placeholders() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Placeholders()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input_template.py")
	content := "tf = $TF * units.seconds\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing template: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != content {
		t.Errorf("Load() = %q, want %q", got, content)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.py"))
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Load() error = %v, want ErrTemplateNotFound", err)
	}
}
