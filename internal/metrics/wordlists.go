package metrics

// Fixed scoring vocabularies. Process-wide immutable data, loaded once;
// nothing here is configurable at runtime.

var (
	obligationWords = wordSet(
		"shall", "must", "will", "required", "obligated", "bound",
	)

	permissionWords = wordSet(
		"may", "can", "might", "permitted", "entitled", "allowed",
	)

	recommendationWords = wordSet(
		"should", "ought", "recommended", "encouraged", "advisable",
	)

	protectiveWords = wordSet(
		"protect", "protects", "protected", "safeguard", "safeguards",
		"preserve", "preserves", "defend", "defends", "support", "supports",
		"benefit", "benefits", "care", "respect", "respects", "rights",
		"safety", "fair", "consent", "welfare",
	)

	harmfulWords = wordSet(
		"harm", "harms", "damage", "damages", "destroy", "destroys",
		"exploit", "exploits", "coerce", "coerces", "deceive", "deceives",
		"injure", "injures", "abuse", "abuses", "threaten", "threatens",
		"punish", "punishes", "discriminate", "forfeit", "forfeits",
	)

	personWords = wordSet(
		"person", "persons", "people", "party", "parties", "individual",
		"individuals", "employee", "employees", "citizen", "citizens",
		"user", "users", "member", "members", "worker", "workers",
		"child", "children", "customer", "customers",
	)

	// Single-word vague terms, matched per token.
	vagueWords = wordSet(
		"reasonable", "reasonably", "appropriate", "timely", "promptly",
		"material", "materially", "substantial", "substantially",
		"approximately", "adequate", "sufficient", "significant",
		"satisfactory", "customary", "periodically", "efforts",
	)
)

// Multi-word vague phrases, matched against the joined lower-cased text.
var vaguePhrases = []string{
	"as needed",
	"as appropriate",
	"as applicable",
	"best efforts",
	"from time to time",
	"to the extent practicable",
	"in good faith",
	"due course",
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
