package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/hotelsuite/internal/equipment"
	"github.com/angelmondragon/hotelsuite/internal/leaves"
	"github.com/angelmondragon/hotelsuite/internal/personnel"
	"github.com/angelmondragon/hotelsuite/internal/products"
	"github.com/angelmondragon/hotelsuite/internal/reports"
	"github.com/angelmondragon/hotelsuite/internal/reservations"
	"github.com/angelmondragon/hotelsuite/internal/revenue"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

// Demonstration datasets shown when the backend has nothing to offer. Each call
// returns a fresh slice.

var demoDay = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

func day(offset int) *time.Time {
	t := demoDay.AddDate(0, 0, offset)
	return &t
}

func DemoPersonnel() []personnel.Member {
	return []personnel.Member{
		{ID: "demo-p1", FirstName: "Awa", LastName: "Diallo", Position: "Réceptionniste", Salary: decimal.NewFromInt(1800), Status: enums.PersonnelStatusActive},
		{ID: "demo-p2", FirstName: "Marc", LastName: "Petit", Position: "Chef de cuisine", Salary: decimal.NewFromInt(2600), Status: enums.PersonnelStatusActive},
		{ID: "demo-p3", FirstName: "Lina", LastName: "Moreau", Position: "Serveuse", Salary: decimal.NewFromInt(1600), Status: enums.PersonnelStatusOnLeave},
	}
}

func DemoProducts() []products.Product {
	return []products.Product{
		{ID: "demo-pr1", Name: "Jus de bissap", Category: "Boissons", Price: decimal.RequireFromString("2.50"), Stock: 40, AlertThreshold: 10, Status: enums.ProductStatusAvailable},
		{ID: "demo-pr2", Name: "Thiéboudienne", Category: "Plats", Price: decimal.RequireFromString("12.00"), Stock: 5, AlertThreshold: 8, Status: enums.ProductStatusAvailable},
		{ID: "demo-pr3", Name: "Café", Category: "Boissons", Price: decimal.RequireFromString("1.80"), Stock: 0, AlertThreshold: 5, Status: enums.ProductStatusOutOfStock},
	}
}

func DemoLeaves() []leaves.Request {
	return []leaves.Request{
		{ID: "demo-c1", PersonnelID: "demo-p3", Kind: "annuel", StartDate: day(0), EndDate: day(6), Days: 7, Status: enums.LeaveStatusApproved},
		{ID: "demo-c2", PersonnelID: "demo-p1", Kind: "maladie", StartDate: day(10), EndDate: day(11), Days: 2, Status: enums.LeaveStatusPending},
	}
}

func DemoReports() []reports.Report {
	return []reports.Report{
		{ID: "demo-r1", Title: "Inventaire mensuel", Kind: "activite", Status: enums.ReportStatusSubmitted, CreatedAt: day(0)},
		{ID: "demo-r2", Title: "Fuite en cuisine", Kind: "incident", Status: enums.ReportStatusResolved, CreatedAt: day(-3)},
	}
}

func DemoReservations() []reservations.Reservation {
	return []reservations.Reservation{
		{ID: "demo-b1", CustomerName: "Famille Ndiaye", PartySize: 5, Date: day(1), Amount: decimal.NewFromInt(90), Status: enums.ReservationStatusConfirmed},
		{ID: "demo-b2", CustomerName: "M. Laurent", PartySize: 2, Date: day(2), Amount: decimal.NewFromInt(45), Status: enums.ReservationStatusPending},
	}
}

func DemoEquipment() []equipment.Item {
	return []equipment.Item{
		{ID: "demo-e1", Name: "Four mixte", Category: "cuisine", PurchasePrice: decimal.NewFromInt(4200), NextMaintenance: day(-1), Status: enums.EquipmentStatusOperational},
		{ID: "demo-e2", Name: "Climatiseur salle", Category: "salle", PurchasePrice: decimal.NewFromInt(900), Status: enums.EquipmentStatusMaintenance},
	}
}

func DemoRevenue() []revenue.Entry {
	return []revenue.Entry{
		{ID: "demo-v1", Category: enums.RevenueCategoryLodging, Amount: decimal.NewFromInt(1250), Date: day(-20)},
		{ID: "demo-v2", Category: enums.RevenueCategoryRestaurant, Amount: decimal.NewFromInt(830), Date: day(-2)},
		{ID: "demo-v3", Category: enums.RevenueCategoryBar, Amount: decimal.NewFromInt(310), Date: day(-1)},
	}
}
