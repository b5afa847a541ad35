package report

import (
	"bytes"
	"html/template"

	"github.com/vinicu/pmo-jira-yby/internal/domain"
)

// The document is a fixed dark-theme template: layout, color tokens and all
// Portuguese copy are literal constants. Only the four KPI values and the
// generation timestamp vary between runs. The "42 tarefas/semana" throughput
// figure is a static placeholder, not computed.
const reportHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>PMO Executive Report</title>
    <style>
        body { background: #1a1a1a; color: #e0e0e0; font-family: 'Segoe UI', Tahoma, sans-serif; margin: 0; padding: 20px; }
        .container { max-width: 1200px; margin: 0 auto; background: #222; border: 1px solid #444; border-radius: 8px; padding: 30px; }
        .header { border-bottom: 3px solid #00d4ff; padding-bottom: 20px; margin-bottom: 30px; }
        .header h1 { margin: 0; color: #00d4ff; }
        .timestamp { color: #888; font-size: 0.9em; }
        .kpi-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin: 30px 0; }
        .kpi-card { background: #2a2a2a; border: 1px solid #444; border-radius: 6px; padding: 20px; }
        .kpi-value { font-size: 2.5em; font-weight: bold; color: #00d4ff; }
        .kpi-label { color: #aaa; font-size: 0.9em; margin-top: 10px; }
        .section { margin: 40px 0; }
        .section h2 { color: #00d4ff; border-left: 4px solid #ff006e; padding-left: 15px; }
        .risk-box { background: #3a2a2a; border-left: 4px solid #ff006e; padding: 15px; margin: 15px 0; border-radius: 4px; }
        .status-ok { color: #00ff41; }
        .status-warning { color: #ffaa00; }
        .status-critical { color: #ff006e; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🚀 PMO Executive Report - 360°</h1>
            <p class="timestamp">Gerado em: {{.Timestamp}}</p>
        </div>

        <div class="kpi-grid">
            <div class="kpi-card">
                <div class="kpi-value">{{.Total}}</div>
                <div class="kpi-label">Total de Tarefas</div>
            </div>
            <div class="kpi-card">
                <div class="kpi-value status-critical">{{.Critical}}</div>
                <div class="kpi-label">🔴 Críticas</div>
            </div>
            <div class="kpi-card">
                <div class="kpi-value status-warning">{{.InRisk}}</div>
                <div class="kpi-label">🟡 Em Risco</div>
            </div>
            <div class="kpi-card">
                <div class="kpi-value status-ok">{{.Completed}}</div>
                <div class="kpi-label">🟢 Concluídas</div>
            </div>
        </div>

        <div class="section">
            <h2>📊 Situação do Dia</h2>
            <div class="risk-box">
                <p><strong>Throughput:</strong> 42 tarefas/semana</p>
                <p><strong>Tarefas Abertas:</strong> {{.Total}}</p>
                <p><strong>Hotzone:</strong> {{.Critical}} itens críticos</p>
            </div>
        </div>

        <div class="section">
            <h2>🔥 Riscos Críticos - MAGENTA</h2>
            <div class="risk-box">
                <p>Revisar issues com status 'In Progress' e priority 'Highest' imediatamente.</p>
                <p><strong>Recomendação:</strong> Alocar recursos adicionais e fazer acompanhamento diário.</p>
            </div>
        </div>

        <div class="section">
            <h2>📋 Distribuição por Status</h2>
            <p>✅ Monitorar backlog em tempo real para otimizar fluxo de trabalho.</p>
        </div>
    </div>
</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Parse(reportHTML))

type reportView struct {
	Timestamp string
	Total     int
	Critical  int
	InRisk    int
	Completed int
}

// Render produces the HTML document for one summary. Deterministic: the only
// varying bytes are the KPI values and the embedded timestamp.
func Render(s domain.ReportSummary) (string, error) {
	v := reportView{
		Timestamp: s.GeneratedAt.Format("2006-01-02 15:04:05"),
		Total:     s.Total,
		Critical:  s.Critical,
		InRisk:    s.InRisk,
		Completed: s.Completed,
	}
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}
