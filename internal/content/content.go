// Package content holds the landing page copy as plain data.
//
// Nothing here knows about HTML. Editing copy means editing this file only;
// the section layout lives in package view.
package content

import "landing/internal/model"

// Site groups every collection the page renders.
type Site struct {
	Nav           []model.NavLink
	Headline      string
	Lead          model.RichText
	SellingPoints []model.SellingPoint
	ApproachTitle string
	Approach      []model.ApproachStep
	Features      []model.Feature
	Evidence      Evidence
	PackagesTitle string
	PackagesLead  string
	PackagesBadge string
	Packages      []model.Package
	FAQ           []model.FAQEntry
	CTA           CTA
	FooterTagline string
}

// Evidence is the copy of the evidence snapshot section.
type Evidence struct {
	Title      string
	Lead       string
	Points     []model.RichText
	Transcript model.SampleArtifact
	CSV        model.SampleArtifact
}

// CTA is the copy around the contact form.
type CTA struct {
	Title           string
	Lead            string
	Badges          []string
	Acknowledgement string
}

// Transcript is the sample OpenSSL session shown in the evidence section.
const Transcript = "# Verify hybrid TLS negotiation\n" +
	"openssl s_client -connect example.com:443 -tls1_3 -groups X25519MLKEM768 < /dev/null\n" +
	"# Look for:\n" +
	"# Group: X25519MLKEM768"

// InventoryCSV is the sample inventory export shown in the evidence section.
const InventoryCSV = "hostname,port,group,cipher,cert_sig_alg,cert_key_bits\n" +
	"example.com,443,X25519MLKEM768,TLS_AES_256_GCM_SHA384,rsa_pkcs1_sha256,3072"

// Default returns the Qubrius Labs landing page copy. securityPath is the
// route of the external trust page linked from the header and footer.
func Default(securityPath string) Site {
	return Site{
		Nav: []model.NavLink{
			{Label: "Product", Href: "#features"},
			{Label: "Evidence", Href: "#evidence"},
			{Label: "Packages", Href: "#packages"},
			{Label: "FAQ", Href: "#faq"},
			{Label: "Security & Trust", Href: securityPath},
		},
		Headline: "Become quantum‑safe without downtime",
		Lead: model.RichText{
			model.Plain("NIST/ENISA‑aligned cryptographic "),
			model.Bold("inventory"),
			model.Plain(", safe "),
			model.Bold("hybrid TLS"),
			model.Plain(" migration, and "),
			model.Bold("continuous evidence"),
			model.Plain("—ready for OMB M‑23‑02 and EU programs (NIS2, DORA)."),
		},
		SellingPoints: []model.SellingPoint{
			{Label: "On‑prem / No telemetry"},
			{Label: "Evidence‑first (CSV + transcripts)"},
			{Label: "Zero‑downtime playbooks"},
			{Label: "OMB • NIS2 • DORA aligned"},
		},
		ApproachTitle: "Approach (3 steps)",
		Approach: []model.ApproachStep{
			{Icon: model.IconLayers, Title: "Inventory", Description: "CSV/JSON + transcripts; risk heatmap."},
			{Icon: model.IconServerCog, Title: "Migrate", Description: "Hybrid TLS on canaries; fallback & rollback."},
			{Icon: model.IconFileCheck, Title: "Monitor", Description: "Scheduled scans; rotation evidence; reports."},
		},
		Features: []model.Feature{
			{
				Icon:        model.IconScanLine,
				Title:       "Cryptographic Inventory",
				Description: "Automated scans across HTTPS, mail (STARTTLS), VPN, and reverse proxies — outputs CSV/JSON + transcripts.",
			},
			{
				Icon:        model.IconServerCog,
				Title:       "Hybrid TLS Migration",
				Description: "Enable TLS 1.3 hybrid ML‑KEM (e.g., X25519MLKEM768) with canaries, fallbacks, and scripted rollback.",
			},
			{
				Icon:        model.IconFileCheck,
				Title:       "Continuous Evidence",
				Description: "Scheduled scans, drift detection, rotation evidence, and executive reporting.",
			},
		},
		Evidence: Evidence{
			Title: "Evidence that sticks",
			Lead: "We prove hybrid negotiation and ship machine‑readable artifacts. " +
				"Auditors get raw transcripts and CSV fields they can verify independently.",
			Points: []model.RichText{
				{model.Plain("OpenSSL transcript shows "), model.Code("Group: X25519MLKEM768")},
				{model.Plain("Inventory CSV with group, cipher, cert algorithm & key bits")},
				{model.Plain("Control mapping ("), model.Code("control_map.json"), model.Plain(") for OMB/NIS2/DORA/CRA")},
			},
			Transcript: model.SampleArtifact{Title: "Transcript", Body: Transcript},
			CSV:        model.SampleArtifact{Title: "Inventory CSV", Body: InventoryCSV},
		},
		PackagesTitle: "Packages",
		PackagesLead:  "Start small, scale as you go. Fixed‑fee pilots available.",
		PackagesBadge: "US & EU ready",
		Packages: []model.Package{
			{
				Name:        "Baseline",
				Description: "Readiness inventory for a scoped set of endpoints.",
				Bullets:     []string{"CSV/JSON inventory", "Transcript evidence", "Risk heatmap", "Executive brief"},
			},
			{
				Name:        "Migration Pilot",
				Description: "Enable hybrid TLS on a canary tier with rollback.",
				Bullets:     []string{"Change plan", "Config updates", "Validation transcripts", "Rollback rehearsal"},
			},
			{
				Name:        "Monitoring",
				Description: "Ongoing scans, drift alerts, and rotation evidence.",
				Bullets:     []string{"Scheduled scans", "Drift detection", "Rotation policy", "Quarterly reports"},
			},
		},
		FAQ: []model.FAQEntry{
			{
				ID:       "f1",
				Question: "Do we need to replace RSA certificates now?",
				Answer: model.RichText{
					model.Plain("No. Keep RSA/ECDSA for identity today. We start with "),
					model.Bold("hybrid ML‑KEM"),
					model.Plain(" in TLS 1.3 to protect key exchange; plan ML‑DSA as the ecosystem matures."),
				},
			},
			{
				ID:       "f2",
				Question: "Will hybrid TLS break clients?",
				Answer: model.RichText{
					model.Plain("We enable on "),
					model.Bold("canaries"),
					model.Plain(", keep classic fallback (e.g., X25519), and script rollback. We also verify with transcripts."),
				},
			},
			{
				ID:       "f3",
				Question: "Can you align to OMB, NIS2, or DORA?",
				Answer: model.RichText{
					model.Plain("Yes. Our outputs are framework‑neutral. Each run can emit a "),
					model.Code("control_map.json"),
					model.Plain(" mapped to OMB M‑23‑02, NIS2, DORA, or CRA."),
				},
			},
			{
				ID:       "f4",
				Question: "Where does the data live?",
				Answer: model.RichText{
					model.Plain("On your infrastructure. Our tools run on‑prem/VPC with "),
					model.Bold("no telemetry by default"),
					model.Plain(". Optional anonymisation and retention knobs are available."),
				},
			},
		},
		CTA: CTA{
			Title:           "Book a readiness review",
			Lead:            "We’ll show a sample inventory export and a transcript proving hybrid negotiation.",
			Badges:          []string{"15–20 minutes", "No prep needed"},
			Acknowledgement: "Thanks! We will reach out.",
		},
		FooterTagline: "Security • Privacy • Compliance",
	}
}
