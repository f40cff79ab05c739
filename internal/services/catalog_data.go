package services

// baseCatalog is the compiled-in marketing dataset. It doubles as the fallback
// when a live pull is unavailable.
var baseCatalog = Catalog{
	Source:  "fallback",
	IsStale: true,
	Fiber: FiberData{
		Packages: []FiberPackage{
			{
				Name:  "Uncapped 10Mbps",
				Price: "R399/month",
				Speed: "10Mbps down/up",
				Features: []string{
					"Uncapped data",
					"100GB Night Surfer (00:00-05:00)",
					"Free installation",
					"Free WiFi router",
					"24-month contract",
					"Speed tests at speedtest.telkom.co.za",
				},
			},
			{
				Name:  "Uncapped 25Mbps",
				Price: "R599/month",
				Speed: "25Mbps down/up",
				Features: []string{
					"Uncapped data",
					"200GB Night Surfer (00:00-05:00)",
					"Free installation",
					"Free WiFi router",
					"24-month contract",
					"Ideal for streaming and gaming",
				},
			},
			{
				Name:  "Uncapped 50Mbps",
				Price: "R899/month",
				Speed: "50Mbps down/up",
				Features: []string{
					"Uncapped data",
					"300GB Night Surfer (00:00-05:00)",
					"Free installation",
					"Free WiFi router",
					"24-month contract",
					"Perfect for multiple users",
				},
			},
			{
				Name:  "Uncapped 100Mbps",
				Price: "R1299/month",
				Speed: "100Mbps down/up",
				Features: []string{
					"Uncapped data",
					"500GB Night Surfer (00:00-05:00)",
					"Free installation",
					"Free WiFi router",
					"24-month contract",
					"Premium speed for power users",
				},
			},
		},
		Coverage: []string{
			"Available in Johannesburg, Cape Town, Durban",
			"Pretoria, Port Elizabeth, Bloemfontein",
			"East London, Pietermaritzburg, Kimberley",
			"Coverage expanding to smaller towns",
			"Check availability at telkom.co.za/coverage",
		},
	},
	Mobile: MobileData{
		Packages: []MobilePackage{
			{
				Name:  "SmartChoice Flexi",
				Price: "From R99/month",
				Data:  "500MB to 20GB options",
				Features: []string{
					"Flexible contract options",
					"Roll-over data",
					"Free WhatsApp",
					"National calls included",
					"International roaming",
				},
			},
			{
				Name:  "FreeMe 1GB",
				Price: "R199/month",
				Data:  "1GB + 1GB Night Surfer",
				Features: []string{
					"120 minutes any network calls",
					"Free Telkom to Telkom calls",
					"Free WhatsApp",
					"SMS included",
					"24-month contract",
				},
			},
			{
				Name:  "FreeMe 2GB",
				Price: "R299/month",
				Data:  "2GB + 2GB Night Surfer",
				Features: []string{
					"240 minutes any network calls",
					"Free Telkom to Telkom calls",
					"Free WhatsApp and Facebook",
					"SMS included",
					"24-month contract",
				},
			},
			{
				Name:  "FreeMe 5GB",
				Price: "R499/month",
				Data:  "5GB + 5GB Night Surfer",
				Features: []string{
					"600 minutes any network calls",
					"Unlimited Telkom to Telkom calls",
					"Free social media",
					"SMS included",
					"24-month contract",
				},
			},
		},
		Prepaid: []PrepaidPackage{
			{
				Name: "Per Second Billing",
				Rate: "R1.50/minute calls",
				Data: "From R2 for 25MB",
				Features: []string{
					"No monthly fees",
					"Pay as you use",
					"Data bundles available",
					"WhatsApp bundles from R5",
					"Long expiry periods",
				},
			},
			{
				Name: "Daily Bundles",
				Rate: "From R2/day",
				Data: "50MB daily data",
				Features: []string{
					"Affordable daily options",
					"Auto-renewal available",
					"SMS and call combos",
					"Perfect for light users",
				},
			},
		},
	},
	Support: SupportData{
		Contacts: []SupportContact{
			{
				Service:     "Customer Care",
				Number:      "10210",
				Hours:       "24/7",
				Description: "General queries, billing, account management",
			},
			{
				Service:     "Technical Support",
				Number:      "081 180",
				Hours:       "24/7",
				Description: "Internet, mobile, and technical issues",
			},
			{
				Service:     "Sales",
				Number:      "081 180",
				Hours:       "08:00 - 20:00 weekdays",
				Description: "New connections and upgrades",
			},
			{
				Service:     "Complaints",
				Number:      "081 180",
				Hours:       "08:00 - 17:00 weekdays",
				Description: "Escalated complaints and disputes",
			},
		},
		SelfService: []string{
			"Online account management at telkom.co.za",
			"Telkom mobile app (iOS and Android)",
			"USSD codes: *180# for mobile services",
			"Speed test at speedtest.telkom.co.za",
			"Network status at telkom.co.za/network-status",
			"Live chat support on website",
			"Social media support @TelkomZA",
		},
		Troubleshooting: []TroubleshootingGuide{
			{
				Issue: "Slow Internet",
				Steps: []string{
					"Run speed test at speedtest.telkom.co.za",
					"Restart your router/modem",
					"Check all cable connections",
					"Test with ethernet cable directly",
					"Check for network outages",
					"Contact 081 180 if issues persist",
				},
			},
			{
				Issue: "No Internet Connection",
				Steps: []string{
					"Check all cables and power connections",
					"Look for flashing lights on router",
					"Restart router (unplug for 30 seconds)",
					"Check telkom.co.za/network-status",
					"Try different device to test",
					"Log fault at telkom.co.za or call 10210",
				},
			},
			{
				Issue: "Mobile Network Issues",
				Steps: []string{
					"Check network coverage in your area",
					"Toggle airplane mode on/off",
					"Restart your phone",
					"Check for carrier settings updates",
					"Remove and reinsert SIM card",
					"Contact 081 180 for network issues",
				},
			},
		},
	},
	Billing: BillingData{
		PaymentMethods: []string{
			"Debit order (recommended)",
			"Online banking payments",
			"EFT payments",
			"Credit card payments",
			"Cash at Telkom stores",
			"Cash at Pick n Pay, Checkers",
			"ATM payments",
			"Third-party payment services",
		},
		BillingOptions: []string{
			"Monthly paper bills (R15 fee)",
			"Email billing (free)",
			"SMS billing notifications",
			"Online account statements",
			"Consolidated billing for multiple services",
		},
		Assistance: []string{
			"Payment arrangement plans available",
			"Senior citizen discounts on select packages",
			"Student verification discounts",
			"Debt counselling support",
			"Billing dispute resolution process",
		},
	},
	Business: BusinessData{
		Solutions: []BusinessSolution{
			{
				Category: "Connectivity",
				Services: []string{
					"Business fiber from 10Mbps to 1Gbps",
					"ADSL and VDSL connections",
					"Leased lines and MPLS",
					"SD-WAN solutions",
					"Backup connectivity options",
				},
			},
			{
				Category: "Voice Services",
				Services: []string{
					"Business landlines",
					"PBX and hosted PBX",
					"SIP trunking",
					"International calling plans",
					"Conference call facilities",
				},
			},
			{
				Category: "Digital Services",
				Services: []string{
					"Cloud hosting and storage",
					"Microsoft Office 365",
					"Cybersecurity solutions",
					"Managed IT services",
					"Digital transformation consulting",
				},
			},
			{
				Category: "Mobile for Business",
				Services: []string{
					"Bulk mobile packages",
					"Mobile device management",
					"IoT connectivity solutions",
					"Fleet management services",
					"International roaming plans",
				},
			},
		},
		Support: []string{
			"Dedicated business account managers",
			"24/7 business technical support",
			"Priority fault resolution",
			"Custom service level agreements",
			"Business portal for account management",
		},
	},
}
