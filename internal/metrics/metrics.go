package metrics

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type Metrics struct {
	startTime time.Time

	extractionsTotal   atomic.Int64
	extractionsSuccess atomic.Int64
	extractionsFailed  atomic.Int64

	interpretationFailures atomic.Int64
	configFailures         atomic.Int64

	tokensPrompt     atomic.Int64
	tokensCompletion atomic.Int64

	reviewsSaved atomic.Int64
	pdfsRendered atomic.Int64
	pdfsFailed   atomic.Int64

	responseTimes     []time.Duration
	responseTimesLock sync.Mutex
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

func Default() *Metrics {
	once.Do(func() {
		defaultMetrics = New()
	})
	return defaultMetrics
}

func New() *Metrics {
	return &Metrics{
		startTime:     time.Now(),
		responseTimes: make([]time.Duration, 0, 1000),
	}
}

func (m *Metrics) RecordExtraction(success bool) {
	m.extractionsTotal.Add(1)
	if success {
		m.extractionsSuccess.Add(1)
	} else {
		m.extractionsFailed.Add(1)
	}
}

func (m *Metrics) RecordInterpretationFailure() {
	m.interpretationFailures.Add(1)
}

func (m *Metrics) RecordConfigFailure() {
	m.configFailures.Add(1)
}

func (m *Metrics) RecordTokens(prompt, completion int64) {
	m.tokensPrompt.Add(prompt)
	m.tokensCompletion.Add(completion)
}

func (m *Metrics) RecordReviewSaved() {
	m.reviewsSaved.Add(1)
}

func (m *Metrics) RecordPDFRender(success bool) {
	if success {
		m.pdfsRendered.Add(1)
	} else {
		m.pdfsFailed.Add(1)
	}
}

func (m *Metrics) RecordResponseTime(d time.Duration) {
	m.responseTimesLock.Lock()
	defer m.responseTimesLock.Unlock()

	m.responseTimes = append(m.responseTimes, d)
	if len(m.responseTimes) > 1000 {
		m.responseTimes = m.responseTimes[1:]
	}
}

type Snapshot struct {
	Uptime                 time.Duration `json:"uptime"`
	ExtractionsTotal       int64         `json:"extractions_total"`
	ExtractionsSuccess     int64         `json:"extractions_success"`
	ExtractionsFailed      int64         `json:"extractions_failed"`
	InterpretationFailures int64         `json:"interpretation_failures"`
	ConfigFailures         int64         `json:"config_failures"`
	TokensPrompt           int64         `json:"tokens_prompt"`
	TokensCompletion       int64         `json:"tokens_completion"`
	ReviewsSaved           int64         `json:"reviews_saved"`
	PDFsRendered           int64         `json:"pdfs_rendered"`
	PDFsFailed             int64         `json:"pdfs_failed"`
	AvgResponseTime        time.Duration `json:"avg_response_time"`
	P99ResponseTime        time.Duration `json:"p99_response_time"`
	SuccessRate            float64       `json:"success_rate"`
}

func (m *Metrics) Snapshot() *Snapshot {
	s := &Snapshot{
		Uptime:                 time.Since(m.startTime),
		ExtractionsTotal:       m.extractionsTotal.Load(),
		ExtractionsSuccess:     m.extractionsSuccess.Load(),
		ExtractionsFailed:      m.extractionsFailed.Load(),
		InterpretationFailures: m.interpretationFailures.Load(),
		ConfigFailures:         m.configFailures.Load(),
		TokensPrompt:           m.tokensPrompt.Load(),
		TokensCompletion:       m.tokensCompletion.Load(),
		ReviewsSaved:           m.reviewsSaved.Load(),
		PDFsRendered:           m.pdfsRendered.Load(),
		PDFsFailed:             m.pdfsFailed.Load(),
	}

	if s.ExtractionsTotal > 0 {
		s.SuccessRate = float64(s.ExtractionsSuccess) / float64(s.ExtractionsTotal) * 100
	}

	m.responseTimesLock.Lock()
	if len(m.responseTimes) > 0 {
		var total time.Duration
		for _, rt := range m.responseTimes {
			total += rt
		}
		s.AvgResponseTime = total / time.Duration(len(m.responseTimes))

		sorted := make([]time.Duration, len(m.responseTimes))
		copy(sorted, m.responseTimes)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		p99Index := int(float64(len(sorted)) * 0.99)
		if p99Index >= len(sorted) {
			p99Index = len(sorted) - 1
		}
		s.P99ResponseTime = sorted[p99Index]
	}
	m.responseTimesLock.Unlock()

	return s
}

func (m *Metrics) Prometheus() string {
	var sb strings.Builder

	counter := func(name, help string, v int64) {
		sb.WriteString("# HELP " + name + " " + help + "\n")
		sb.WriteString("# TYPE " + name + " counter\n")
		sb.WriteString(name + " " + strconv.FormatInt(v, 10) + "\n\n")
	}

	sb.WriteString("# HELP pdfx_uptime_seconds Time since server start\n")
	sb.WriteString("# TYPE pdfx_uptime_seconds gauge\n")
	sb.WriteString("pdfx_uptime_seconds " + strconv.FormatInt(int64(time.Since(m.startTime).Seconds()), 10) + "\n\n")

	counter("pdfx_extractions_total", "Total extraction requests", m.extractionsTotal.Load())
	counter("pdfx_extractions_success", "Successful extractions", m.extractionsSuccess.Load())
	counter("pdfx_extractions_failed", "Failed extractions", m.extractionsFailed.Load())
	counter("pdfx_interpretation_failures_total", "AI responses that could not be parsed", m.interpretationFailures.Load())
	counter("pdfx_config_failures_total", "Extractions rejected for missing credentials", m.configFailures.Load())
	counter("pdfx_tokens_prompt", "Prompt tokens used", m.tokensPrompt.Load())
	counter("pdfx_tokens_completion", "Completion tokens used", m.tokensCompletion.Load())
	counter("pdfx_reviews_saved_total", "Review snapshots saved", m.reviewsSaved.Load())
	counter("pdfx_pdfs_rendered_total", "Review PDFs rendered", m.pdfsRendered.Load())
	counter("pdfx_pdfs_failed_total", "Review PDF render failures", m.pdfsFailed.Load())

	return sb.String()
}

func RecordExtraction(success bool) {
	Default().RecordExtraction(success)
}

func RecordInterpretationFailure() {
	Default().RecordInterpretationFailure()
}

func RecordConfigFailure() {
	Default().RecordConfigFailure()
}

func RecordTokens(prompt, completion int64) {
	Default().RecordTokens(prompt, completion)
}

func RecordReviewSaved() {
	Default().RecordReviewSaved()
}

func RecordPDFRender(success bool) {
	Default().RecordPDFRender(success)
}

func RecordResponseTime(d time.Duration) {
	Default().RecordResponseTime(d)
}

func GetSnapshot() *Snapshot {
	return Default().Snapshot()
}

func Prometheus() string {
	return Default().Prometheus()
}
