// Package fixtures seeds a demo data set so the dashboard has something to
// show on a fresh database.
package fixtures

import (
	"context"
	"time"

	"workorders/internal/adapters/out/postgres/orderrepo"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

var (
	// DemoConsultantID is the consultant most demo orders are assigned to.
	DemoConsultantID = kernel.MustUUIDFromString("6f1c2a0e-3b7d-4c55-9e2a-1a0c7b3d5e01")
	// DemoColleagueID is a second consultant holding one completed order.
	DemoColleagueID = kernel.MustUUIDFromString("6f1c2a0e-3b7d-4c55-9e2a-1a0c7b3d5e02")
)

type demoOrder struct {
	brief    order.Brief
	priority order.Priority
	status   order.Status
	age      time.Duration
	touched  time.Duration
	due      time.Duration
	assignee *kernel.UUID
	progress *int
}

const day = 24 * time.Hour

func demoOrders() []demoOrder {
	progress := func(p int) *int { return &p }

	return []demoOrder{
		{
			brief: order.Brief{
				Title:       "Market Research for Software Startup",
				ClientName:  "TechVision Inc.",
				ClientEmail: "contact@techvision.com",
				Description: "Need comprehensive market research for a new software product in the productivity space.",
				Expertise:   []string{"Market Research", "Software"},
			},
			priority: order.High, status: order.Pending, age: 2 * day, due: 12 * day,
		},
		{
			brief: order.Brief{
				Title:       "Financial Projection Review",
				ClientName:  "GrowthCapital LLC",
				ClientEmail: "finance@growthcapital.com",
				Description: "Review of 5-year financial projections for an e-commerce business seeking funding.",
				Expertise:   []string{"Financial Analysis", "E-commerce"},
			},
			priority: order.Medium, status: order.InProgress, age: 9 * day, touched: 6 * day, due: 7 * day,
			assignee: &DemoConsultantID, progress: progress(45),
		},
		{
			brief: order.Brief{
				Title:       "Marketing Strategy Development",
				ClientName:  "Bloom Brands",
				ClientEmail: "marketing@bloombrands.com",
				Description: "Development of comprehensive digital marketing strategy for a beauty brand launch.",
				Expertise:   []string{"Marketing", "Digital Strategy"},
			},
			priority: order.Medium, status: order.Review, age: 14 * day, touched: 3 * day, due: 2 * day,
			assignee: &DemoConsultantID, progress: progress(90),
		},
		{
			brief: order.Brief{
				Title:       "Supply Chain Optimization",
				ClientName:  "GlobalGoods Inc.",
				ClientEmail: "operations@globalgoods.com",
				Description: "Analysis and recommendations for optimizing international supply chain with focus on cost reduction.",
				Expertise:   []string{"Supply Chain", "Operations"},
			},
			priority: order.Low, status: order.Completed, age: 24 * day, touched: 4 * day,
			assignee: &DemoColleagueID, progress: progress(100),
		},
		{
			brief: order.Brief{
				Title:       "HR Policy Development",
				ClientName:  "Talent Solutions Co.",
				ClientEmail: "hr@talentsolutions.com",
				Description: "Create comprehensive HR policies for a growing technology company with 50+ employees.",
				Expertise:   []string{"Human Resources", "Policy Development"},
			},
			priority: order.Medium, status: order.Pending, age: day, due: 17 * day,
		},
		{
			brief: order.Brief{
				Title:       "Product Pricing Strategy",
				ClientName:  "InnovateTech",
				ClientEmail: "product@innovatetech.com",
				Description: "Develop optimal pricing strategy for a new SaaS product targeting enterprise customers.",
				Expertise:   []string{"Pricing Strategy", "SaaS"},
			},
			priority: order.High, status: order.Pending, due: 15 * day,
		},
	}
}

// Seed inserts the demo orders when the orders table is empty and reports how
// many were written. Timestamps are placed relative to now.
func Seed(ctx context.Context, db *gorm.DB, now time.Time) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&orderrepo.OrderDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	now = now.UTC().Truncate(time.Second)
	seeded := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := orderrepo.NewGormOrderRepository(tx)
		for _, d := range demoOrders() {
			o, err := build(d, now)
			if err != nil {
				return err
			}
			if err = repo.Add(ctx, o); err != nil {
				return err
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seeded, nil
}

func build(d demoOrder, now time.Time) (*order.Order, error) {
	createdAt := now.Add(-d.age)
	snapshot := order.Snapshot{
		ID:         kernel.NewUUID(),
		Brief:      d.brief,
		Status:     d.status,
		Priority:   d.priority,
		CreatedAt:  createdAt,
		UpdatedAt:  now.Add(-d.touched),
		AssigneeID: d.assignee,
		Progress:   d.progress,
	}
	if d.touched == 0 {
		snapshot.UpdatedAt = createdAt
	}
	if d.due > 0 {
		due := createdAt.Add(d.due)
		snapshot.DueDate = &due
	}
	return order.RestoreOrder(snapshot)
}
