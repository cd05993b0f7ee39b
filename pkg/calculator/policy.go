package calculator

import (
	"ads-daily-report/pkg/models"
)

// Policies holds the resolution chain of each base metric.
type Policies struct {
	Cost        []models.ResolutionPolicy
	Installs    []models.ResolutionPolicy
	PayingUsers []models.ResolutionPolicy
	Revenue     []models.ResolutionPolicy
}

// PoliciesFor builds the chains from the configured base labels. adjust-tagged
// rows come first; generic labels are the fallback.
func PoliciesFor(cfg models.Config) Policies {
	return Policies{
		Cost: []models.ResolutionPolicy{
			{Exact: []string{cfg.LabelCostBase}, Fuzzy: []string{"消化", "金額"}},
			{Fuzzy: []string{"広告費"}},
		},
		Installs: []models.ResolutionPolicy{
			{Exact: []string{cfg.LabelInstallsBase + "(adjust)", "インストール(adjust)"}, Fuzzy: []string{"インストール"}},
			{Exact: []string{cfg.LabelInstallsBase, "インストール"}, Fuzzy: []string{"インストール"}},
		},
		PayingUsers: []models.ResolutionPolicy{
			{Exact: []string{cfg.LabelPUAdjustBase, "課金者数(adjust)"}, Fuzzy: []string{"課金者数"}},
		},
		Revenue: []models.ResolutionPolicy{
			{Exact: []string{cfg.LabelRevenueBase, "課金金額(adjust)"}, Fuzzy: []string{"課金", "金額"}},
			{Fuzzy: []string{"売上"}},
		},
	}
}

// ResolveKeys resolves the four base metrics among labels.
func (p Policies) ResolveKeys(labels []string) models.ResolvedKeys {
	var k models.ResolvedKeys
	k.Cost, _ = ResolveChain(labels, p.Cost)
	k.Installs, _ = ResolveChain(labels, p.Installs)
	k.PayingUsers, _ = ResolveChain(labels, p.PayingUsers)
	k.Revenue, _ = ResolveChain(labels, p.Revenue)
	return k
}

// withFallback fills unresolved keys from fb.
func withFallback(k, fb models.ResolvedKeys) models.ResolvedKeys {
	if k.Cost == "" {
		k.Cost = fb.Cost
	}
	if k.Installs == "" {
		k.Installs = fb.Installs
	}
	if k.PayingUsers == "" {
		k.PayingUsers = fb.PayingUsers
	}
	if k.Revenue == "" {
		k.Revenue = fb.Revenue
	}
	return k
}
