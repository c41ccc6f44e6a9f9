package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/poiesic/rankit/catalog"
)

// builtinLineItems returns a small expense catalog used when no seed
// file is provided.
func builtinLineItems() []*catalog.LineItem {
	return []*catalog.LineItem{
		{Name: "GPU Server Purchase", Description: "Rack mounted GPU server for the research cluster", Category: "Hardware", Vendor: "Supermicro", AmountCents: 1249900},
		{Name: "Workstation Upgrade", Description: "Replacement workstations for the design team", Category: "Hardware", Vendor: "Dell", AmountCents: 689500},
		{Name: "Cloud Hosting", Description: "Monthly object storage and compute invoice", Category: "Cloud", Vendor: "Hetzner", AmountCents: 48200},
		{Name: "Maintenance Contract", Description: "Quarterly maintenance contract for HVAC systems", Category: "Services", Vendor: "Airflow Inc", AmountCents: 230000},
		{Name: "IDE Licenses", Description: "Editor licenses for the platform team", Category: "Software", Vendor: "JetBrains", AmountCents: 64900},
		{Name: "Office Internet", Description: "Fiber connection for the main office", Category: "Services", Vendor: "Init7", AmountCents: 11100},
		{Name: "Database Consulting", Description: "Performance audit of the billing database", Category: "Services", Vendor: "PGX Partners", AmountCents: 420000},
		{Name: "Conference Travel", Description: "Flights and hotel for the systems conference", Category: "Travel", Vendor: "", AmountCents: 184750},
		{Name: "Backup Storage", Description: "Offsite tape rotation and archival", Category: "Cloud", Vendor: "Iron Mountain", AmountCents: 32000},
		{Name: "Security Audit", Description: "Annual penetration test of public endpoints", Category: "Services", Vendor: "Cure53", AmountCents: 950000},
		{Name: "Monitor Replacement", Description: "Replacement monitors for the support desk", Category: "Hardware", Vendor: "Dell", AmountCents: 92400},
		{Name: "Payroll Software", Description: "Annual subscription for payroll processing", Category: "Software", Vendor: "Gusto", AmountCents: 144000},
		{Name: "Espresso Machine", Description: "Replacement espresso machine for the lobby café", Category: "Facilities", Vendor: "La Marzocco", AmountCents: 310000},
		{Name: "Training Budget", Description: "Quarterly training allowance for engineering", Category: "Education", Vendor: "", AmountCents: 500000},
		{Name: "Fleet Fuel Cards", Description: "Fuel cards for the delivery vans", Category: "Travel", Vendor: "Shell", AmountCents: 76300},
	}
}

// lineItemsFromFile reads line items from a JSON lines file, one object
// per line. Blank lines are skipped.
func lineItemsFromFile(filename string) ([]*catalog.LineItem, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var items []*catalog.LineItem
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		item := &catalog.LineItem{}
		if err := json.Unmarshal(line, item); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
