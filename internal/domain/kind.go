package domain

// Entity type taxonomy. Fixed and seeded at migration time.
const (
	TypeStartup        = "startup"
	TypeIncubator      = "incubator"
	TypeAccelerator    = "accelerator"
	TypeCoworkingSpace = "coworking-space"
	TypeMedia          = "media"
	TypeCommunity      = "community"
	TypeEvent          = "event"
	TypeResource       = "resource"
	TypeJobPortal      = "job_portal"
)

// EntityTypeSeed lists the taxonomy in seed order.
var EntityTypeSeed = []EntityType{
	{Slug: TypeStartup, Name: "Startup"},
	{Slug: TypeIncubator, Name: "Incubator"},
	{Slug: TypeAccelerator, Name: "Accelerator"},
	{Slug: TypeCoworkingSpace, Name: "Coworking Space"},
	{Slug: TypeMedia, Name: "Media"},
	{Slug: TypeCommunity, Name: "Community"},
	{Slug: TypeEvent, Name: "Event"},
	{Slug: TypeResource, Name: "Resource"},
	{Slug: TypeJobPortal, Name: "Job Portal"},
}

// TypeAllowsCategories reports whether category links are legal for the given
// entity type slug. Categories only carry meaning for startups.
func TypeAllowsCategories(typeSlug string) bool {
	return typeSlug == TypeStartup
}

// TypeAllowsMediaTypes reports whether media-type links are legal for the
// given entity type slug.
func TypeAllowsMediaTypes(typeSlug string) bool {
	return typeSlug == TypeMedia
}
