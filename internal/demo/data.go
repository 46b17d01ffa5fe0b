package demo

import (
	"fmt"

	"github.com/marcus/dropdown/pkg/dropdown"
)

// region is one deployable region with the markdown blurb shown in the
// detail pane.
type region struct {
	code string
	name string
	doc  string
}

var regions = []region{
	{"us-east-1", "N. Virginia", "# us-east-1\n\nThe default region. Largest capacity pool, first to receive new instance families.\n\n- 6 availability zones\n- p50 API latency from the CI fleet: **9ms**\n"},
	{"us-east-2", "Ohio", "# us-east-2\n\nOverflow capacity for us-east-1 with meaningfully cheaper egress.\n\n- 3 availability zones\n- Same-coast replication target for `us-east-1`\n"},
	{"us-west-2", "Oregon", "# us-west-2\n\nPreferred West-coast region. GPU quota requests clear fastest here.\n\n- 4 availability zones\n- Carbon-neutral power\n"},
	{"eu-west-1", "Ireland", "# eu-west-1\n\nPrimary European region and home of the EU billing stack.\n\n- 3 availability zones\n- GDPR data residency anchor\n"},
	{"eu-west-2", "London", "# eu-west-2\n\nUK data residency. Runs a reduced service catalog.\n\n- 3 availability zones\n- No managed GPU pools\n"},
	{"eu-central-1", "Frankfurt", "# eu-central-1\n\nLowest latency to the Central European exchanges.\n\n- 3 availability zones\n- C5 compliance attestations on file\n"},
	{"eu-north-1", "Stockholm", "# eu-north-1\n\nCheapest European compute. Good fit for batch and CI workloads.\n\n- 3 availability zones\n- Hydro-powered\n"},
	{"ap-south-1", "Mumbai", "# ap-south-1\n\nServes the Indian subcontinent.\n\n- 3 availability zones\n- Local settlement for INR billing\n"},
	{"ap-southeast-1", "Singapore", "# ap-southeast-1\n\nHub for Southeast Asia with dense peering.\n\n- 3 availability zones\n- MAS outsourcing guidelines apply\n"},
	{"ap-southeast-2", "Sydney", "# ap-southeast-2\n\nAustralia and New Zealand traffic lands here.\n\n- 3 availability zones\n- IRAP assessed\n"},
	{"ap-northeast-1", "Tokyo", "# ap-northeast-1\n\nJapan. Oldest Asia-Pacific region, broadest service catalog.\n\n- 4 availability zones\n- Dedicated game-server instance pools\n"},
	{"sa-east-1", "São Paulo", "# sa-east-1\n\nSouth America. Plan for higher instance pricing.\n\n- 3 availability zones\n- Nearest replication target: `us-east-1`\n"},
}

const noRegionDoc = "# No region selected\n\nPick a region to see its capacity notes, compliance posture and latency profile.\n"

func regionOptions() []dropdown.Option[string] {
	opts := make([]dropdown.Option[string], len(regions))
	for i, r := range regions {
		opts[i] = dropdown.NewOption(fmt.Sprintf("%s  %s", r.code, r.name), r.code)
	}
	return opts
}

func regionDoc(code string) string {
	for _, r := range regions {
		if r.code == code {
			return r.doc
		}
	}
	return noRegionDoc
}

func serviceOptions() []dropdown.Option[string] {
	return []dropdown.Option[string]{
		dropdown.NewOption("API", "api"),
		dropdown.NewOption("Worker pool", "worker"),
		dropdown.NewOption("Scheduler", "scheduler"),
		dropdown.NewOption("Gateway", "gateway"),
		dropdown.NewOption("Billing", "billing"),
	}
}

func levelOptions() []dropdown.Option[string] {
	return []dropdown.Option[string]{
		dropdown.NewOption("debug", "debug"),
		dropdown.NewOption("info", "info"),
		dropdown.NewOption("warn", "warn"),
		dropdown.NewOption("error", "error"),
	}
}

// releaseNotes is the scrollable background content under the form.
var releaseNotes = []string{
	"Recent changes",
	"",
	"  2026-08-19  Rollouts now drain connections zone by zone instead of all at once.",
	"  2026-08-12  The scheduler backs off exponentially when a region reports capacity pressure.",
	"  2026-08-05  Gateway health checks moved from TCP to HTTP with a 2s budget.",
	"  2026-07-29  Billing exports settle in the region's local currency where supported.",
	"  2026-07-22  Worker pools scale on queue depth p95 rather than instantaneous depth.",
	"  2026-07-15  API deployments pin the previous release for one-click rollback.",
	"  2026-07-08  Log shipping batches compress with zstd, cutting egress by roughly a third.",
	"  2026-07-01  Added sa-east-1 to the self-serve region list.",
	"  2026-06-24  Scheduler leases renew out of band so deploys no longer block on lease expiry.",
	"  2026-06-17  Gateway config reloads without dropping in-flight requests.",
}
