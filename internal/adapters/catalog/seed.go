package catalog

import "github.com/mediscan/mediscan/internal/domain/entities"

// seedRecords returns the demo medication catalog. A production deployment
// would load this from a managed catalog service instead.
func seedRecords() []*entities.MedicationRecord {
	return []*entities.MedicationRecord{
		{
			Code:        "MED001",
			Name:        "Acetaminophen",
			Description: "Pain reliever and fever reducer used for mild to moderate pain relief.",
			Dosage:      "325-650mg every 4-6 hours as needed. Do not exceed 3000mg per day.",
			SideEffects: []string{
				"Nausea",
				"Stomach pain",
				"Loss of appetite",
				"Headache",
				"Rash",
			},
			ManufactureDate: mustDate("2023-06-15"),
			ExpiryDate:      mustDate("2025-06-15"),
			Prices: []entities.PriceQuote{
				{Pharmacy: "CVS Pharmacy", Price: 8.99, Location: "Downtown", LastUpdated: mustDate("2025-06-01")},
				{Pharmacy: "Walgreens", Price: 7.49, Location: "West Side", LastUpdated: mustDate("2025-06-01")},
				{Pharmacy: "RiteMed", Price: 9.99, Location: "East Side", LastUpdated: mustDate("2025-05-30")},
			},
		},
		{
			Code:            "MED002",
			Name:            "Amoxicillin",
			Description:     "Antibiotic used to treat a variety of bacterial infections.",
			Dosage:          "250-500mg every 8 hours or 500-875mg every 12 hours, depending on infection severity.",
			SideEffects:     []string{"Diarrhea", "Stomach pain", "Nausea", "Vomiting", "Rash"},
			ManufactureDate: mustDate("2023-03-10"),
			ExpiryDate:      mustDate("2024-03-10"),
			Prices: []entities.PriceQuote{
				{Pharmacy: "CVS Pharmacy", Price: 15.99, Location: "Downtown", LastUpdated: mustDate("2025-06-01")},
				{Pharmacy: "Walgreens", Price: 14.49, Location: "West Side", LastUpdated: mustDate("2025-06-01")},
			},
		},
		{
			Code:        "MED003",
			Name:        "Lisinopril",
			Description: "ACE inhibitor used to treat high blood pressure and heart failure.",
			Dosage:      "10-40mg once daily. May start with lower dose of 5mg in some patients.",
			SideEffects: []string{
				"Dizziness",
				"Headache",
				"Dry cough",
				"Fatigue",
				"Hypotension",
			},
			ManufactureDate: mustDate("2023-09-22"),
			ExpiryDate:      mustDate("2026-09-22"),
			Prices: []entities.PriceQuote{
				{Pharmacy: "CVS Pharmacy", Price: 12.99, Location: "Downtown", LastUpdated: mustDate("2025-06-01")},
				{Pharmacy: "Walgreens", Price: 11.99, Location: "West Side", LastUpdated: mustDate("2025-06-01")},
				{Pharmacy: "RiteMed", Price: 10.99, Location: "East Side", LastUpdated: mustDate("2025-05-30")},
			},
		},
		{
			Code:        "MED004",
			Name:        "Loratadine",
			Description: "Non-drowsy antihistamine used to treat allergy symptoms such as sneezing, runny nose, and itchy eyes.",
			Dosage:      "10mg once daily.",
			SideEffects: []string{
				"Headache",
				"Dry mouth",
				"Fatigue",
				"Sleepiness (rare)",
			},
			ManufactureDate: mustDate("2024-01-18"),
			ExpiryDate:      mustDate("2026-01-18"),
			Prices: []entities.PriceQuote{
				{Pharmacy: "CVS Pharmacy", Price: 6.99, Location: "Downtown", LastUpdated: mustDate("2025-06-20")},
				{Pharmacy: "Walgreens", Price: 5.49, Location: "West Side", LastUpdated: mustDate("2025-06-18")},
			},
		},
		{
			Code:        "MED005",
			Name:        "Ibuprofen",
			Description: "Nonsteroidal anti-inflammatory drug (NSAID) used to relieve pain, reduce inflammation, and lower fever.",
			Dosage:      "200-400mg every 4-6 hours as needed. Do not exceed 1200mg per day without medical advice.",
			SideEffects: []string{
				"Stomach pain",
				"Heartburn",
				"Nausea",
				"Dizziness",
				"Rash",
			},
			ManufactureDate: mustDate("2023-11-05"),
			ExpiryDate:      mustDate("2025-11-05"),
			Prices: []entities.PriceQuote{
				{Pharmacy: "CVS Pharmacy", Price: 9.49, Location: "Downtown", LastUpdated: mustDate("2025-06-15")},
				{Pharmacy: "Walgreens", Price: 8.75, Location: "West Side", LastUpdated: mustDate("2025-06-15")},
				{Pharmacy: "RiteMed", Price: 7.99, Location: "East Side", LastUpdated: mustDate("2025-06-10")},
			},
		},
		{
			Code:        "MED006",
			Name:        "Metformin",
			Description: "Oral diabetes medication used to control blood sugar levels in people with type 2 diabetes.",
			Dosage:      "500-1000mg twice daily with meals. Maximum dose: 2000mg/day.",
			SideEffects: []string{
				"Diarrhea",
				"Nausea",
				"Metallic taste",
				"Abdominal discomfort",
				"Loss of appetite",
			},
			ManufactureDate: mustDate("2023-07-12"),
			ExpiryDate:      mustDate("2025-07-12"),
			Prices: []entities.PriceQuote{
				{Pharmacy: "CVS Pharmacy", Price: 10.99, Location: "Downtown", LastUpdated: mustDate("2025-06-12")},
				{Pharmacy: "Walgreens", Price: 9.99, Location: "West Side", LastUpdated: mustDate("2025-06-12")},
			},
		},
	}
}
