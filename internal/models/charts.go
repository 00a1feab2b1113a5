package models

// Figure es la especificación de un gráfico en el formato que entiende Plotly.
// La figura vacía se serializa como {}.
type Figure struct {
	Data   []Trace `json:"data,omitempty"`
	Layout *Layout `json:"layout,omitempty"`
}

// IsEmpty indica si la figura no tiene datos
func (f Figure) IsEmpty() bool {
	return len(f.Data) == 0 && f.Layout == nil
}

// Trace es una serie dentro de un gráfico
type Trace struct {
	Type   string    `json:"type"`
	Mode   string    `json:"mode,omitempty"`
	Name   string    `json:"name,omitempty"`
	Labels []string  `json:"labels,omitempty"` // Solo para gráficos de torta
	Values []float64 `json:"values,omitempty"` // Solo para gráficos de torta
	X      []int     `json:"x,omitempty"`
	Y      []float64 `json:"y,omitempty"`
	Marker *Marker   `json:"marker,omitempty"`
}

type Marker struct {
	Colors []string `json:"colors,omitempty"`
}

type Layout struct {
	Title Title `json:"title"`
	XAxis *Axis `json:"xaxis,omitempty"`
	YAxis *Axis `json:"yaxis,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Title `json:"title"`
}

// DashboardOutput son las tres salidas que muestra la página
type DashboardOutput struct {
	Summary   string `json:"summary"`
	PieChart  Figure `json:"pie_chart"`
	LineChart Figure `json:"line_chart"`
}
