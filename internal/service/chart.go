package service

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров графика заполненности
const (
	chartWidth      = 700
	chartHeight     = 360
	chartPaddingX   = 50.0
	chartPaddingTop = 50.0
	chartPaddingBot = 50.0
	barGap          = 14.0
	axisLabelOffset = 18.0
)

// Цветовая схема
var (
	chartBgColor    = color.RGBA{245, 246, 248, 255}
	chartTextColor  = color.RGBA{80, 85, 90, 255}
	chartAxisColor  = color.NRGBA{150, 150, 150, 255}
	chartBarColor   = color.RGBA{133, 193, 85, 220}
	chartEmptyColor = color.NRGBA{220, 220, 220, 255}
)

// RenderCoverageChart рисует столбчатую диаграмму заполненности недели:
// по оси X даты целевой недели, по оси Y количество сохранённых смен.
// Подписи только из дат и цифр, поэтому достаточно встроенного шрифта.
func RenderCoverageChart(weekDates []string, counts map[string]int, employeeTotal int) ([]byte, error) {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(chartBgColor)
	dc.Clear()

	maxCount := employeeTotal
	for _, date := range weekDates {
		if counts[date] > maxCount {
			maxCount = counts[date]
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	plotHeight := float64(chartHeight) - chartPaddingTop - chartPaddingBot
	plotWidth := float64(chartWidth) - 2*chartPaddingX
	barWidth := plotWidth/float64(len(weekDates)) - barGap
	baseY := float64(chartHeight) - chartPaddingBot

	// Ось X
	dc.SetColor(chartAxisColor)
	dc.SetLineWidth(1)
	dc.DrawLine(chartPaddingX, baseY, float64(chartWidth)-chartPaddingX, baseY)
	dc.Stroke()

	for i, date := range weekDates {
		count := counts[date]
		x := chartPaddingX + float64(i)*(barWidth+barGap) + barGap/2

		barHeight := plotHeight * float64(count) / float64(maxCount)
		if count == 0 {
			// Пустой день отмечаем тонкой плашкой, чтобы он был виден
			dc.SetColor(chartEmptyColor)
			dc.DrawRectangle(x, baseY-3, barWidth, 3)
		} else {
			dc.SetColor(chartBarColor)
			dc.DrawRectangle(x, baseY-barHeight, barWidth, barHeight)
		}
		dc.Fill()

		dc.SetColor(chartTextColor)
		dc.DrawStringAnchored(date, x+barWidth/2, baseY+axisLabelOffset, 0.5, 0.5)
		dc.DrawStringAnchored(fmt.Sprintf("%d", count), x+barWidth/2, baseY-barHeight-10, 0.5, 0.5)
	}

	dc.SetColor(chartTextColor)
	title := fmt.Sprintf("%s - %s", weekDates[0], weekDates[len(weekDates)-1])
	dc.DrawStringAnchored(title, float64(chartWidth)/2, chartPaddingTop/2, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode coverage chart: %w", err)
	}

	return buf.Bytes(), nil
}
