// Package chart draws density curves on a terminal canvas.
package chart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexshd/orderbench"
)

// Palette
var (
	ColorC6        = lipgloss.Color("#2CD7C7") // Bright teal
	ColorMagnitude = lipgloss.Color("#F4D03F") // Amber
	ColorAxis      = lipgloss.Color("#2C4A54") // Slate
	ColorTitle     = lipgloss.Color("#20B9B4") // Primary teal
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorTitle)
	axisStyle  = lipgloss.NewStyle().Foreground(ColorAxis)
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAxis).
			Padding(0, 1)
)

// Config sizes the canvas.
type Config struct {
	Width  int // Plot area columns
	Height int // Plot area rows
	Bins   int // Histogram bins per series
}

// DefaultConfig returns a 72×20 canvas with 50 bins.
func DefaultConfig() Config {
	return Config{Width: 72, Height: 20, Bins: orderbench.DefaultBins}
}

// Curve is one density curve.
type Curve struct {
	Label   string
	Hist    orderbench.Histogram
	Summary orderbench.Summary
	Marker  rune
	Style   lipgloss.Style
}

// Plot histograms c6 and |ψ|² independently and draws both density curves
// (bin center vs density) on one canvas. The series may differ in length.
func Plot(w io.Writer, c6, magSq []float64, cfg Config) error {
	c6Hist, err := orderbench.NewHistogram(c6, cfg.Bins)
	if err != nil {
		return fmt.Errorf("c6: %w", err)
	}
	magHist, err := orderbench.NewHistogram(magSq, cfg.Bins)
	if err != nil {
		return fmt.Errorf("|ψ|²: %w", err)
	}

	curves := []Curve{
		{
			Label:   "c6",
			Hist:    c6Hist,
			Summary: orderbench.Summarize(c6),
			Marker:  '●',
			Style:   lipgloss.NewStyle().Foreground(ColorC6),
		},
		{
			Label:   "|ψ|²",
			Hist:    magHist,
			Summary: orderbench.Summarize(magSq),
			Marker:  '◆',
			Style:   lipgloss.NewStyle().Foreground(ColorMagnitude),
		},
	}

	_, err = io.WriteString(w, Render("Order parameter densities", curves, cfg)+"\n")
	return err
}

// cell is one canvas position; curve -1 is empty.
type cell struct {
	curve int
}

// Render draws the curves inside a framed canvas with axes and a legend.
func Render(title string, curves []Curve, cfg Config) string {
	width, height := max(cfg.Width, 10), max(cfg.Height, 3)

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMax := 0.0
	for _, c := range curves {
		if c.Hist.Bins() == 0 {
			continue
		}
		xMin = math.Min(xMin, c.Hist.Edges[0])
		xMax = math.Max(xMax, c.Hist.Edges[len(c.Hist.Edges)-1])
		yMax = math.Max(yMax, c.Hist.MaxDensity())
	}
	if math.IsInf(xMin, 0) || xMax <= xMin {
		xMin, xMax = 0, 1
	}
	if yMax <= 0 {
		yMax = 1
	}

	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
		for c := range grid[r] {
			grid[r][c].curve = -1
		}
	}

	toCol := func(x float64) int {
		return clamp(int(math.Round((x-xMin)/(xMax-xMin)*float64(width-1))), 0, width-1)
	}
	toRow := func(y float64) int {
		return clamp(height-1-int(math.Round(y/yMax*float64(height-1))), 0, height-1)
	}

	for ci, c := range curves {
		centers := c.Hist.Centers()
		for i := range centers {
			col, row := toCol(centers[i]), toRow(c.Hist.Density[i])
			grid[row][col].curve = ci
			if i == 0 {
				continue
			}

			// Fill the columns between consecutive bin centers.
			prevCol := toCol(centers[i-1])
			for x := prevCol + 1; x < col; x++ {
				frac := float64(x-prevCol) / float64(col-prevCol)
				y := c.Hist.Density[i-1] + frac*(c.Hist.Density[i]-c.Hist.Density[i-1])
				grid[toRow(y)][x].curve = ci
			}
		}
	}

	yLabels := make(map[int]string, 3)
	yLabels[0] = formatTick(yMax)
	yLabels[(height-1)/2] = formatTick(yMax / 2)
	yLabels[height-1] = formatTick(0)
	labelWidth := 0
	for _, l := range yLabels {
		labelWidth = max(labelWidth, len(l))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	for r := 0; r < height; r++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s ┤", labelWidth, yLabels[r])))
		for _, cl := range grid[r] {
			if cl.curve < 0 {
				b.WriteByte(' ')
				continue
			}
			c := curves[cl.curve]
			b.WriteString(c.Style.Render(string(c.Marker)))
		}
		b.WriteByte('\n')
	}

	b.WriteString(axisStyle.Render(strings.Repeat(" ", labelWidth+1) + "└" + strings.Repeat("─", width)))
	b.WriteByte('\n')
	b.WriteString(axisStyle.Render(xAxisLabels(labelWidth+2, width, xMin, xMax)))
	b.WriteString("\n\n")

	for i, c := range curves {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.Style.Render(string(c.Marker) + " " + c.Label))
		b.WriteString(axisStyle.Render(fmt.Sprintf("  n=%d  mean=%s  sd=%s  range=[%s, %s]",
			c.Summary.Count, formatTick(c.Summary.Mean), formatTick(c.Summary.Stddev),
			formatTick(c.Summary.Min), formatTick(c.Summary.Max))))
	}

	return frameStyle.Render(b.String())
}

// xAxisLabels places min, mid and max under the axis.
func xAxisLabels(indent, width int, xMin, xMax float64) string {
	line := []rune(strings.Repeat(" ", indent+width))
	place := func(col int, label string) {
		start := clamp(indent+col-len(label)/2, 0, len(line)-len(label))
		copy(line[start:], []rune(label))
	}
	place(0, formatTick(xMin))
	place(width/2, formatTick((xMin+xMax)/2))
	place(width-1, formatTick(xMax))
	return strings.TrimRight(string(line), " ")
}

func formatTick(v float64) string {
	switch a := math.Abs(v); {
	case a == 0:
		return "0"
	case a >= 1e4 || a < 1e-3:
		return fmt.Sprintf("%.2e", v)
	default:
		return fmt.Sprintf("%.3g", v)
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
