// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and may only reference known metric names.
package validate

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/watch-price-tracker/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Dashboard validates every Prometheus target of every panel, including
// panels nested in rows.
func Dashboard(d dashboard.Dashboard, known map[string]bool) *Result {
	res := &Result{}
	for _, p := range d.Panels {
		switch {
		case p.Panel != nil:
			checkPanel(res, p.Panel, known)
		case p.RowPanel != nil:
			for i := range p.RowPanel.Panels {
				checkPanel(res, &p.RowPanel.Panels[i], known)
			}
		}
	}
	return res
}

// Rules validates the expressions of every rule in cr.
func Rules(cr rules.PrometheusRule, known map[string]bool) *Result {
	res := &Result{}
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			checkExpr(res, fmt.Sprintf("%s/%s", g.Name, name), r.Expr, known)
		}
	}
	return res
}

func checkPanel(res *Result, p *dashboard.Panel, known map[string]bool) {
	title := "<untitled>"
	if p.Title != nil {
		title = *p.Title
	}
	if len(p.Targets) == 0 {
		res.warnf("panel %q has no targets", title)
		return
	}
	for _, t := range p.Targets {
		q, ok := t.(*prometheus.Dataquery)
		if !ok {
			res.warnf("panel %q has a non-Prometheus target", title)
			continue
		}
		checkExpr(res, "panel "+title, q.Expr, known)
	}
}

func checkExpr(res *Result, where, expr string, known map[string]bool) {
	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.errorf("%s: invalid PromQL %q: %v", where, expr, err)
		return
	}
	for _, name := range MetricNames(parsed) {
		if !known[name] {
			res.errorf("%s: unknown metric %q", where, name)
		}
	}
}

// MetricNames returns the metric names selected anywhere in expr.
func MetricNames(expr parser.Expr) []string {
	var names []string
	parser.Inspect(expr, func(node parser.Node, _ []parser.Node) error {
		if vs, ok := node.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names
}
