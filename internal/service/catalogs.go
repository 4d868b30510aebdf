// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package service

import "github.com/cloudix/coindesk/models"

// fivemBuildID pins the game build installed on every provisioned server.
// Updated manually when the hosting fleet moves to a new build.
const fivemBuildID = "23683-1062db8a7b8e0c03f7c159be4cbfa181f49b2cc1"

// fallbackDockerImage is used when the egg template carries no image.
const fallbackDockerImage = "ghcr.io/pterodactyl/yolks:debian"

// questCatalog is the static invite-milestone catalog. Order matters: the
// UI renders quests in this sequence.
var questCatalog = []models.Quest{
	{ID: "invite_1", Title: "Покани 1 приятел", Description: "Покани 1 човек в Discord сървъра", Coins: 5, Icon: "👤"},
	{ID: "invite_2", Title: "Покани 2 приятели", Description: "Покани 2 души в Discord сървъра", Coins: 10, Icon: "👥"},
	{ID: "invite_5", Title: "Покани 5 приятели", Description: "Покани 5 души в Discord сървъра", Coins: 25, Icon: "🎯"},
	{ID: "invite_10", Title: "Покани 10 приятели", Description: "Покани 10 души в Discord сървъра", Coins: 50, Icon: "🔥"},
	{ID: "invite_25", Title: "Покани 25 приятели", Description: "Покани 25 души в Discord сървъра", Coins: 100, Icon: "⭐"},
	{ID: "invite_50", Title: "Покани 50 приятели", Description: "Покани 50 души в Discord сървъра", Coins: 200, Icon: "👑"},
}

// planCatalog defines the purchasable tiers. The limit profiles are only
// ever sent to the panel; the UI sees the stripped View.
var planCatalog = []models.ServicePlan{
	{
		ID:   "fivem_basic",
		Name: "FiveM Basic",
		Cost: 50,
		Features: []string{
			"1 GB RAM",
			"5 GB диск",
			"1 CPU ядро",
			"1 база данни",
			"1 резервно копие",
		},
		Limits: models.PlanLimits{Memory: 1024, Disk: 5120, CPU: 100, Databases: 1, Backups: 1},
	},
	{
		ID:   "fivem_standard",
		Name: "FiveM Standard",
		Cost: 100,
		Features: []string{
			"2 GB RAM",
			"10 GB диск",
			"1.5 CPU ядра",
			"2 бази данни",
			"2 резервни копия",
		},
		Limits: models.PlanLimits{Memory: 2048, Disk: 10240, CPU: 150, Databases: 2, Backups: 2},
	},
	{
		ID:   "fivem_premium",
		Name: "FiveM Premium",
		Cost: 150,
		Features: []string{
			"3 GB RAM",
			"15 GB диск",
			"2 CPU ядра",
			"3 бази данни",
			"3 резервни копия",
		},
		Limits: models.PlanLimits{Memory: 3072, Disk: 15360, CPU: 200, Databases: 3, Backups: 3},
	},
}

// questByID returns the catalog entry for id, or false when the id is not
// part of the catalog.
func questByID(id string) (models.Quest, bool) {
	for _, q := range questCatalog {
		if q.ID == id {
			return q, true
		}
	}
	return models.Quest{}, false
}

// planByID returns the catalog entry for id, or false when the id is not
// part of the catalog.
func planByID(id string) (models.ServicePlan, bool) {
	for _, p := range planCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.ServicePlan{}, false
}
