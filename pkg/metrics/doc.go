// Package metrics exposes Prometheus collectors for the consent engine.
//
//	reg := prometheus.NewRegistry()
//	m := metrics.NewConsent(reg, "consentd", cfg.Categories.Keys())
//	svc, _ := consent.New(cfg, consent.WithRecorder(m))
//	router.Handle("/metrics", metrics.Handler(reg))
package metrics
