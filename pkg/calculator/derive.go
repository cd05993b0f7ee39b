package calculator

import (
	"ads-daily-report/pkg/models"
)

const (
	DefaultRevenueSplit = 0.7
	DefaultFeeDivisor   = 1.1
)

// Derive computes the KPIs from the four base values. A zero or negative
// denominator gives 0 for that ratio.
//
//	roas = revenue * revenueSplit / feeDivisor / cost * 100
func Derive(cost, installs, payingUsers, revenue, revenueSplit, feeDivisor float64) models.ResolvedMetrics {
	m := models.ResolvedMetrics{
		Cost:        cost,
		Installs:    installs,
		PayingUsers: payingUsers,
		Revenue:     revenue,
	}
	if payingUsers > 0 {
		m.CPA = cost / payingUsers
		m.ARPPU = revenue / payingUsers
	}
	if installs > 0 {
		m.CPI = cost / installs
		m.PURate = payingUsers / installs * 100
	}
	if feeDivisor != 0 {
		m.ROASBase = revenue * revenueSplit / feeDivisor
	}
	if cost > 0 {
		m.ROAS = m.ROASBase / cost * 100
	}
	return m
}

// DeriveSeries looks the resolved keys up in s and derives the KPIs.
func DeriveSeries(s models.WindowSeries, k models.ResolvedKeys, cfg models.Config) models.ResolvedMetrics {
	return Derive(s.Get(k.Cost), s.Get(k.Installs), s.Get(k.PayingUsers), s.Get(k.Revenue),
		cfg.RevenueSplit, cfg.FeeDivisor)
}
