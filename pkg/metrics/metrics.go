// Package metrics 提供 Prometheus helper，包含定价服务的 counter/histogram 模板
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标集合
// 每个实例持有独立的 registry，避免测试中重复注册冲突
type Metrics struct {
	registry *prometheus.Registry

	// HTTP 请求计数
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTP 请求耗时
	HTTPRequestDuration prometheus.Histogram

	// 定价请求计数（按模型区分）
	PricingRequestsTotal *prometheus.CounterVec
	// 定价计算耗时（按模型区分）
	PricingDuration *prometheus.HistogramVec
	// 希腊字母请求计数
	GreeksRequestsTotal prometheus.Counter
	// 定价失败计数
	PricingErrorsTotal prometheus.Counter
}

// New 创建指标实例
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "optionpricing",
			Subsystem: serviceName,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "optionpricing",
			Subsystem: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		PricingRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "optionpricing",
			Subsystem: serviceName,
			Name:      "pricing_requests_total",
			Help:      "Total option pricing requests by model",
		}, []string{"model"}),
		PricingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "optionpricing",
			Subsystem: serviceName,
			Name:      "pricing_duration_seconds",
			Help:      "Option pricing computation duration in seconds by model",
			Buckets:   prometheus.DefBuckets,
		}, []string{"model"}),
		GreeksRequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "optionpricing",
			Subsystem: serviceName,
			Name:      "greeks_requests_total",
			Help:      "Total Greeks computation requests",
		}),
		PricingErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "optionpricing",
			Subsystem: serviceName,
			Name:      "pricing_errors_total",
			Help:      "Total pricing computation failures",
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PricingRequestsTotal,
		m.PricingDuration,
		m.GreeksRequestsTotal,
		m.PricingErrorsTotal,
	)

	return m
}

// Handler 返回指标暴露端点
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve 启动独立的指标服务，阻塞直到服务退出
func (m *Metrics) Serve(port int, path string) error {
	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
