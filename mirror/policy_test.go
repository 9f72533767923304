package mirror

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPolicy(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	policy := Policy{Threshold: time.Hour}

	Convey("NeedsRefresh", t, func() {
		Convey("An empty pool is always due", func() {
			So(policy.NeedsRefresh(nil, now), ShouldBeTrue)
			So(policy.NeedsRefresh(Pool{}, now), ShouldBeTrue)
		})

		Convey("A never-probed first server is due", func() {
			pool := Pool{{URL: "https://a.example"}}
			So(policy.NeedsRefresh(pool, now), ShouldBeTrue)
		})

		Convey("A first server probed within the threshold is fresh", func() {
			pool := Pool{{URL: "https://a.example", LastChecked: now.Add(-59 * time.Minute), Status: Offline}}
			So(policy.NeedsRefresh(pool, now), ShouldBeFalse)
		})

		Convey("A first server probed at or beyond the threshold is stale", func() {
			pool := Pool{{URL: "https://a.example", LastChecked: now.Add(-time.Hour), Status: Online}}
			So(policy.NeedsRefresh(pool, now), ShouldBeTrue)
		})

		Convey("Only the first server decides", func() {
			pool := Pool{
				{URL: "https://a.example", LastChecked: now.Add(-time.Minute), Status: Online},
				{URL: "https://b.example"},
				{URL: "https://c.example", LastChecked: now.Add(-48 * time.Hour), Status: Offline},
			}
			So(policy.NeedsRefresh(pool, now), ShouldBeFalse)
		})

		Convey("A zero threshold falls back to one hour", func() {
			pool := Pool{{URL: "https://a.example", LastChecked: now.Add(-30 * time.Minute), Status: Online}}
			So(Policy{}.NeedsRefresh(pool, now), ShouldBeFalse)
		})
	})
}
