package record

import (
	"strconv"
	"time"
)

// fields is shorthand for seed literals.
type fields = map[string]any

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local)
	if err != nil {
		t, _ = time.ParseInLocation("2006-01-02", s, time.Local)
	}
	return t
}

// build assigns sequential ids ("1", "2", ...) in seed order.
func build(kind Kind, rows ...fields) []Record {
	out := make([]Record, 0, len(rows))
	for i, f := range rows {
		out = append(out, New(kind, strconv.Itoa(i+1), f))
	}
	return out
}

// SeedDataset returns the built-in sample data. Times relative to "now"
// (recent bot leads, open trades, scheduled campaigns) are anchored at now.
func SeedDataset(now time.Time) *Dataset {
	return &Dataset{Records: map[Kind][]Record{
		KindLead:           seedLeads(),
		KindBotLead:        seedBotLeads(now),
		KindTrade:          seedTrades(now),
		KindSignal:         seedSignals(),
		KindPlatform:       seedPlatforms(),
		KindCampaign:       seedCampaigns(now),
		KindSocialPlatform: seedSocialPlatforms(),
		KindWorker:         seedWorkers(),
		KindSubscriber:     seedSubscribers(),
		KindService:        seedServices(),
		KindBusiness:       seedBusinesses(),
		KindIdentity:       seedIdentity(),
		KindBeacon:         seedBeacon(),
		KindStat:           seedStats(),
	}}
}

// SeedKind returns the built-in records of a single kind.
func SeedKind(kind Kind, now time.Time) []Record {
	return SeedDataset(now).Records[kind]
}

func seedLeads() []Record {
	return build(KindLead,
		fields{
			"name": "John Smith", "email": "john@email.com", "phone": "(555) 123-4567",
			"service": "Privacy Fence", "location": "Miami, FL", "value": 2500,
			"status": "New", "date": day("2024-01-15"),
			"notes": "Needs 150ft privacy fence, cedar preferred",
		},
		fields{
			"name": "Maria Garcia", "email": "maria@email.com", "phone": "(555) 987-6543",
			"service": "Chain Link", "location": "Orlando, FL", "value": 1800,
			"status": "Quoted", "date": day("2024-01-14"),
			"notes": "Commercial property, 200ft chain link",
		},
		fields{
			"name": "David Wilson", "email": "david@email.com", "phone": "(555) 456-7890",
			"service": "Vinyl Fence", "location": "Tampa, FL", "value": 3200,
			"status": "Approved", "date": day("2024-01-13"),
			"notes": "White vinyl, 180ft with gates",
		},
	)
}

func seedBotLeads(now time.Time) []Record {
	return build(KindBotLead,
		fields{"name": "Maria Rodriguez", "phone": "(555) 123-4567", "service": "Chain Link Fence", "source": "Facebook", "timestamp": now, "status": "NEW"},
		fields{"name": "John Smith", "phone": "(555) 987-6543", "service": "Privacy Fence", "source": "Instagram", "timestamp": now.Add(-30 * time.Minute), "status": "CONTACTED"},
		fields{"name": "Lisa Johnson", "phone": "(555) 456-7890", "service": "Fence Repair", "source": "TikTok", "timestamp": now.Add(-time.Hour), "status": "QUALIFIED"},
	)
}

func seedTrades(now time.Time) []Record {
	return build(KindTrade,
		fields{"pair": "BTC/USDT", "type": "BUY", "amount": 0.5, "price": 43250.0, "profit": 125.50, "timestamp": now, "status": "OPEN"},
		fields{"pair": "ETH/USDT", "type": "SELL", "amount": 2.1, "price": 2650.0, "profit": -45.20, "timestamp": now, "status": "OPEN"},
		fields{"pair": "ADA/USDT", "type": "BUY", "amount": 1000.0, "price": 0.45, "profit": 78.90, "timestamp": now, "status": "OPEN"},
	)
}

func seedSignals() []Record {
	return build(KindSignal,
		fields{"pair": "BTC/USDT", "direction": "UP", "strength": 85, "confidence": 92, "timeframe": "1H"},
		fields{"pair": "ETH/USDT", "direction": "DOWN", "strength": 72, "confidence": 88, "timeframe": "4H"},
		fields{"pair": "SOL/USDT", "direction": "UP", "strength": 68, "confidence": 75, "timeframe": "15M"},
	)
}

func seedPlatforms() []Record {
	return build(KindPlatform,
		fields{"name": "Binance", "status": "connected", "balance": 15420.50},
		fields{"name": "Coinbase", "status": "connected", "balance": 8926.82},
		fields{"name": "KuCoin", "status": "disconnected", "balance": 1500.00},
	)
}

func seedCampaigns(now time.Time) []Record {
	return build(KindCampaign,
		fields{
			"platform": "Facebook", "reach": 12500, "leads": 28, "engagement": 8.5, "status": "ACTIVE",
			"content": "Professional fence installation - Free estimates! Transform your property with quality fencing.",
		},
		fields{
			"platform": "Instagram", "reach": 8900, "leads": 19, "engagement": 12.3, "status": "ACTIVE",
			"content": "Before & After: Amazing fence transformations in your area. See the difference quality makes!",
		},
		fields{
			"platform": "TikTok", "reach": 15600, "leads": 34, "engagement": 15.8, "status": "SCHEDULED",
			"content":       "Quick fence repair tips & when to call the pros. Don't let damaged fences hurt your property value!",
			"scheduledTime": now.Add(2 * time.Hour),
		},
	)
}

func seedSocialPlatforms() []Record {
	return build(KindSocialPlatform,
		fields{"name": "Facebook", "status": "connected", "posts": 45, "leads": 128},
		fields{"name": "Instagram", "status": "connected", "posts": 38, "leads": 94},
		fields{"name": "TikTok", "status": "connected", "posts": 22, "leads": 67},
		fields{"name": "LinkedIn", "status": "pending", "posts": 0, "leads": 0},
	)
}

func seedWorkers() []Record {
	return build(KindWorker,
		fields{
			"name": "Shopify Product Sync", "type": "automation", "status": "running",
			"lastRun": day("2024-01-15T14:30"), "nextRun": day("2024-01-15T15:30"),
			"description":    "Syncs products, inventory, and orders with EcoGen Market",
			"tasksCompleted": 1247, "successRate": 98.5, "avgRunTime": "2.3s",
		},
		fields{
			"name": "Lead Generator", "type": "automation", "status": "running",
			"lastRun": day("2024-01-15T14:25"), "nextRun": day("2024-01-15T14:35"),
			"description":    "Processes fencing leads and sends auto-responses",
			"tasksCompleted": 89, "successRate": 100, "avgRunTime": "1.8s",
		},
		fields{
			"name": "Social Media Bot", "type": "automation", "status": "idle",
			"lastRun": day("2024-01-15T12:00"), "nextRun": day("2024-01-15T18:00"),
			"description":    "Posts content and engages on social platforms",
			"tasksCompleted": 45, "successRate": 95.6, "avgRunTime": "5.2s",
		},
		fields{
			"name": "System Monitor", "type": "monitoring", "status": "running",
			"lastRun": day("2024-01-15T14:32"), "nextRun": day("2024-01-15T14:33"),
			"description":    "Monitors system health and performance",
			"tasksCompleted": 8640, "successRate": 99.9, "avgRunTime": "0.5s",
		},
		fields{
			"name": "Data Processor", "type": "processing", "status": "error",
			"lastRun":        day("2024-01-15T14:20"),
			"description":    "Processes and analyzes business data",
			"tasksCompleted": 234, "successRate": 87.2, "avgRunTime": "12.1s",
		},
	)
}

func seedSubscribers() []Record {
	return build(KindSubscriber,
		fields{"name": "Sarah Johnson", "email": "sarah@email.com", "service": "AI Trading Signals", "joinDate": day("2024-01-15"), "revenue": 485, "status": "active"},
		fields{"name": "Mike Chen", "email": "mike@email.com", "service": "Full AI Ecosystem", "joinDate": day("2024-02-01"), "revenue": 1491, "status": "active"},
		fields{"name": "Lisa Rodriguez", "email": "lisa@email.com", "service": "Lead Generation Pro", "joinDate": day("2024-01-20"), "revenue": 788, "status": "active"},
		fields{"name": "David Wilson", "email": "david@email.com", "service": "RHNIS Identity Suite", "joinDate": day("2024-02-10"), "revenue": 594, "status": "paused"},
	)
}

func seedServices() []Record {
	return build(KindService,
		fields{
			"name": "AI Trading Signals", "price": 97, "period": "monthly", "roi": "15-25% monthly", "popular": true,
			"description": "Get real-time trading signals powered by our advanced AI algorithms. Perfect for crypto and forex trading.",
			"features":    "Real-time signals; 24/7 monitoring; Multiple platforms; Risk management; Mobile alerts",
			"subscribers": 45, "share": 75, "monthlyRevenue": 4365,
		},
		fields{
			"name": "Lead Generation Pro", "price": 197, "period": "monthly", "roi": "300-500% ROI",
			"description": "Automated lead generation for your business using AI-powered social media campaigns.",
			"features":    "Multi-platform posting; Lead tracking; CRM integration; Analytics dashboard; Custom campaigns",
			"subscribers": 32, "share": 55, "monthlyRevenue": 6304,
		},
		fields{
			"name": "RHNIS Identity Suite", "price": 297, "period": "monthly", "roi": "Priceless digital legacy",
			"description": "Complete digital identity system with voice recognition, avatar, and automation tools.",
			"features":    "Digital avatar; Voice commands; Identity tracking; Legacy preservation; Device control",
			"subscribers": 28, "share": 45, "monthlyRevenue": 8316,
		},
		fields{
			"name": "Full AI Ecosystem", "price": 497, "period": "monthly", "roi": "500-1000% ROI", "popular": true,
			"description": "Complete access to all Nick AI services including trading, leads, and identity management.",
			"features":    "All services included; Priority support; Custom integrations; Advanced analytics; White-label options",
			"subscribers": 22, "share": 35, "monthlyRevenue": 10934,
		},
	)
}

func seedBusinesses() []Record {
	return build(KindBusiness,
		fields{
			"name": "EcoGen Market", "status": "Active",
			"description": "Global dropshipping store with AI-powered product research",
			"stats":       "revenue=$12,450; products=2,340; customers=890",
		},
		fields{
			"name": "Real Fencing & Home Improvement", "status": "Active",
			"description": "Professional fencing services with automated lead generation",
			"stats":       "leads=23; quoted=$45K; completed=12",
		},
		fields{
			"name": "Island Bwoy", "status": "Growing",
			"description": "Caribbean restaurant & natural juice factory",
			"stats":       "orders=156; revenue=$8,920; rating=4.8",
		},
	)
}

func seedIdentity() []Record {
	return build(KindIdentity,
		fields{"title": "Voice Signature", "status": "Active", "description": "Unique voice pattern recognition"},
		fields{"title": "Face Recognition", "status": "Active", "description": "Facial identity verification"},
		fields{"title": "Digital Beacon", "status": "Broadcasting", "description": "Traceable digital footprint"},
		fields{"title": "Sting Mode", "status": "Armed", "description": "Scammer detection & trapping"},
	)
}

func seedBeacon() []Record {
	return build(KindBeacon,
		fields{"type": "Social Media", "count": 1247, "status": "Propagating"},
		fields{"type": "Comments", "count": 892, "status": "Active"},
		fields{"type": "Posts", "count": 156, "status": "Spreading"},
		fields{"type": "Interactions", "count": 3421, "status": "Tracking"},
	)
}

func seedStats() []Record {
	return build(KindStat,
		fields{"label": "EcoGen Sales", "value": "$12,450", "change": "+15%", "trend": "up"},
		fields{"label": "Fencing Leads", "value": "23", "change": "+8%", "trend": "up"},
		fields{"label": "Island Bwoy Orders", "value": "156", "change": "+22%", "trend": "up"},
		fields{"label": "Total Revenue", "value": "$45,230", "change": "+18%", "trend": "up"},
	)
}
