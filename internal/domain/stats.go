package domain

type DashboardStats struct {
	TotalIncidents int `json:"totalIncidents"`
	Investigating  int `json:"investigating"`
	Resolved       int `json:"resolved"`
	Pending        int `json:"pending"`
}

type SeveritySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Fill  string `json:"fill"`
}

type TrendPoint struct {
	Date         string `json:"date"`
	FullDate     string `json:"fullDate"`
	Incidents    int    `json:"incidents"`
	Resolved     int    `json:"resolved"`
	Critical     int    `json:"critical"`
	Pending      int    `json:"pending"`
	ResponseTime int    `json:"responseTime"`
}

type HourlyPoint struct {
	Hour      string `json:"hour"`
	Incidents int    `json:"incidents"`
	Severity  int    `json:"severity"`
}

type CircuitStats struct {
	Circuit         string  `json:"circuit"`
	Incidents       int     `json:"incidents"`
	Resolved        int     `json:"resolved"`
	AvgResponseTime float64 `json:"avgResponseTime"`
	RiskScore       int     `json:"riskScore"`
}

type DashboardData struct {
	Stats           DashboardStats  `json:"stats"`
	RecentIncidents []Incident      `json:"recentIncidents"`
	SeverityData    []SeveritySlice `json:"severityData"`
	TrendData       []TrendPoint    `json:"trendData"`
	HourlyData      []HourlyPoint   `json:"hourlyData"`
	CircuitData     []CircuitStats  `json:"circuitData"`
}
