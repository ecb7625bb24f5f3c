package schema

// DefaultCatalog returns the catalog pre-populated with the built-in
// e-GramSeva section schemas.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	RegisterDefaults(c)
	return c
}

// RegisterDefaults adds the built-in section schemas to the provided catalog.
func RegisterDefaults(c *Catalog) {
	if c == nil {
		return
	}

	c.MustRegister(heroBannerSchema())
	c.MustRegister(richTextSchema())
	c.MustRegister(imageGallerySchema())
	c.MustRegister(splitContentSchema())
	c.MustRegister(videoSchema())
	c.MustRegister(faqSchema())
	c.MustRegister(contactFormSchema())
	c.MustRegister(mapSchema())
	c.MustRegister(contactInfoSchema())
	c.MustRegister(ctaBannerSchema())
	c.MustRegister(socialLinksSchema())
	c.MustRegister(timelineSchema())
	c.MustRegister(testimonialsSchema())
	c.MustRegister(statsSchema())
	c.MustRegister(servicesListSchema())
}

// listItemFields is the uniform per-item schema shared by generic
// item-list sections (gallery cards, service cards, testimonials reuse a
// superset of these).
func listItemFields() []FieldDefinition {
	return []FieldDefinition{
		{Name: "title", Type: FieldText, Label: "Title", Required: true, DisplayOrder: 10,
			ValidationRules: []ValidationRule{{Type: RuleMaxLength, Value: "120", ErrorMessage: "Title must be at most 120 characters"}}},
		{Name: "subtitle", Type: FieldText, Label: "Subtitle", DisplayOrder: 20},
		{Name: "description", Type: FieldRichText, Label: "Description", DisplayOrder: 30},
		{Name: "image", Type: FieldImage, Label: "Image", DisplayOrder: 40},
		{Name: "link", Type: FieldURL, Label: "Link", DisplayOrder: 50},
	}
}

func heroBannerSchema() SectionSchema {
	return NewSchemaBuilder(TypeHeroBanner).
		WithName("Hero Banner").
		WithDescription("Large banner with title, subtitle and call-to-action over a background image").
		WithCategory("marketing").
		WithIcon("star").
		System().
		WithLayouts(LayoutFullWidth, LayoutContained).
		AddTextField("title", "Title", true,
			ValidationRule{Type: RuleMinLength, Value: "3", ErrorMessage: "Title must be at least 3 characters"},
			ValidationRule{Type: RuleMaxLength, Value: "150", ErrorMessage: "Title must be at most 150 characters"}).
		AddTextField("subtitle", "Subtitle", false).
		AddImageField("backgroundImage", "Background Image", false).
		AddBooleanField("showCta", "Show Call To Action", "false").
		AddField(FieldDefinition{
			Name: "cta", Type: FieldGroup, Label: "Call To Action",
			NestedFields: []FieldDefinition{
				{Name: "label", Type: FieldText, Label: "Button Label", DefaultValue: "Learn more", DisplayOrder: 10},
				{Name: "url", Type: FieldURL, Label: "Button Link", DisplayOrder: 20},
			},
			ConditionalLogic: []ConditionalRule{
				{ControllingField: "showCta", Operator: OperatorEquals, Value: "true", Action: ActionShow},
			},
		}).
		MustBuild()
}

func richTextSchema() SectionSchema {
	return NewSchemaBuilder(TypeRichText).
		WithName("Rich Text").
		WithDescription("Free-form formatted text block").
		WithCategory("content").
		WithIcon("align-left").
		System().
		WithLayouts(LayoutContained, LayoutFullWidth).
		AddRichTextField("body", "Body", true).
		MustBuild()
}

func imageGallerySchema() SectionSchema {
	return NewSchemaBuilder(TypeImageGallery).
		WithName("Image Gallery").
		WithDescription("A collection of images shown as a grid, carousel or masonry wall").
		WithCategory("media").
		WithIcon("image").
		WithLayouts(LayoutGrid, LayoutCarousel, LayoutMasonry, LayoutRow, LayoutScrollingRow).
		AddNumberField("columns", "Columns", false,
			ValidationRule{Type: RuleMin, Value: "1", ErrorMessage: "Columns must be at least 1"},
			ValidationRule{Type: RuleMax, Value: "6", ErrorMessage: "Columns must be at most 6"}).
		AddArrayField("items", "Images",
			FieldDefinition{Name: "image", Type: FieldImage, Label: "Image", Required: true, DisplayOrder: 10},
			FieldDefinition{Name: "title", Type: FieldText, Label: "Caption", DisplayOrder: 20},
			FieldDefinition{Name: "description", Type: FieldText, Label: "Description", DisplayOrder: 30},
		).
		MustBuild()
}

func splitContentSchema() SectionSchema {
	return NewSchemaBuilder(TypeSplitContent).
		WithName("Image With Text").
		WithDescription("A two-column section pairing an image with formatted text").
		WithCategory("content").
		WithIcon("columns").
		WithLayouts(LayoutSplit, LayoutContained).
		AddTextField("heading", "Heading", true).
		AddRichTextField("body", "Body", false).
		AddImageField("image", "Image", true).
		AddSelectField("imagePosition", "Image Position", []SelectOption{
			{Label: "Left", Value: "left"},
			{Label: "Right", Value: "right"},
		}, "left").
		MustBuild()
}

func videoSchema() SectionSchema {
	return NewSchemaBuilder(TypeVideo).
		WithName("Video").
		WithDescription("Embedded YouTube/Vimeo video or a direct video file").
		WithCategory("media").
		WithIcon("video").
		WithLayouts(LayoutContained, LayoutFullWidth).
		AddURLField("videoUrl", "Video URL", true).
		AddTextField("caption", "Caption", false).
		AddBooleanField("autoplay", "Autoplay", "false").
		MustBuild()
}

func faqSchema() SectionSchema {
	return NewSchemaBuilder(TypeFAQ).
		WithName("Frequently Asked Questions").
		WithDescription("An accordion of question and answer pairs").
		WithCategory("content").
		WithIcon("help-circle").
		WithLayouts(LayoutList, LayoutContained).
		AddArrayField("items", "Questions",
			FieldDefinition{Name: "question", Type: FieldText, Label: "Question", Required: true, DisplayOrder: 10,
				ValidationRules: []ValidationRule{{Type: RuleMinLength, Value: "5", ErrorMessage: "Question must be at least 5 characters"}}},
			FieldDefinition{Name: "answer", Type: FieldRichText, Label: "Answer", Required: true, DisplayOrder: 20},
		).
		MustBuild()
}

func contactFormSchema() SectionSchema {
	return NewSchemaBuilder(TypeContactForm).
		WithName("Contact Form").
		WithDescription("A form whose inputs are declared per section instance").
		WithCategory("engagement").
		WithIcon("mail").
		WithLayouts(LayoutContained, LayoutSplit).
		AddTextField("heading", "Heading", false).
		AddTextField("submitLabel", "Submit Button Label", false).
		AddArrayField("formFields", "Form Fields",
			FieldDefinition{Name: "label", Type: FieldText, Label: "Label", Required: true, DisplayOrder: 10},
			FieldDefinition{Name: "fieldType", Type: FieldSelect, Label: "Input Type", DisplayOrder: 20,
				Options: []SelectOption{
					{Label: "Text", Value: "text"},
					{Label: "Email", Value: "email"},
					{Label: "Phone", Value: "tel"},
					{Label: "Multi-line", Value: "textarea"},
					{Label: "Dropdown", Value: "select"},
				},
				DefaultValue: "text"},
			FieldDefinition{Name: "required", Type: FieldBoolean, Label: "Required", DisplayOrder: 30},
			FieldDefinition{Name: "choices", Type: FieldText, Label: "Choices (comma separated)", DisplayOrder: 40,
				ConditionalLogic: []ConditionalRule{
					{ControllingField: "fieldType", Operator: OperatorEquals, Value: "select", Action: ActionShow},
				}},
		).
		MustBuild()
}

func mapSchema() SectionSchema {
	return NewSchemaBuilder(TypeMap).
		WithName("Map").
		WithDescription("An embedded map centred on the panchayat office").
		WithCategory("engagement").
		WithIcon("map-pin").
		WithLayouts(LayoutContained, LayoutFullWidth).
		AddNumberField("latitude", "Latitude", true,
			ValidationRule{Type: RuleMin, Value: "-90", ErrorMessage: "Latitude must be >= -90"},
			ValidationRule{Type: RuleMax, Value: "90", ErrorMessage: "Latitude must be <= 90"}).
		AddNumberField("longitude", "Longitude", true,
			ValidationRule{Type: RuleMin, Value: "-180", ErrorMessage: "Longitude must be >= -180"},
			ValidationRule{Type: RuleMax, Value: "180", ErrorMessage: "Longitude must be <= 180"}).
		AddNumberField("zoom", "Zoom Level", false,
			ValidationRule{Type: RuleMin, Value: "1", ErrorMessage: "Zoom must be at least 1"},
			ValidationRule{Type: RuleMax, Value: "20", ErrorMessage: "Zoom must be at most 20"}).
		AddTextField("markerLabel", "Marker Label", false).
		MustBuild()
}

func contactInfoSchema() SectionSchema {
	return NewSchemaBuilder(TypeContactInfo).
		WithName("Contact Information").
		WithDescription("Office address, phone numbers and opening hours").
		WithCategory("engagement").
		WithIcon("phone").
		WithLayouts(LayoutContained, LayoutSplit).
		AddTextField("address", "Address", true).
		AddTextField("phone", "Phone", false,
			ValidationRule{Type: RuleRegex, Value: `^[0-9+\-\s]{6,15}$`, ErrorMessage: "Enter a valid phone number"}).
		AddTextField("email", "Email", false,
			ValidationRule{Type: RuleRegex, Value: `^[^@\s]+@[^@\s]+\.[^@\s]+$`, ErrorMessage: "Enter a valid email address"}).
		AddTextField("hours", "Opening Hours", false).
		MustBuild()
}

func ctaBannerSchema() SectionSchema {
	return NewSchemaBuilder(TypeCTABanner).
		WithName("Call To Action").
		WithDescription("A short banner that pushes visitors toward one action").
		WithCategory("marketing").
		WithIcon("megaphone").
		WithLayouts(LayoutFullWidth, LayoutContained).
		AddTextField("heading", "Heading", true).
		AddTextField("buttonLabel", "Button Label", true).
		AddURLField("buttonUrl", "Button Link", true).
		MustBuild()
}

func socialLinksSchema() SectionSchema {
	return NewSchemaBuilder(TypeSocialLinks).
		WithName("Social Links").
		WithDescription("Icon links to official social media accounts").
		WithCategory("engagement").
		WithIcon("share-2").
		WithLayouts(LayoutRow, LayoutList).
		AddArrayField("items", "Links",
			FieldDefinition{Name: "platform", Type: FieldSelect, Label: "Platform", Required: true, DisplayOrder: 10,
				Options: []SelectOption{
					{Label: "Facebook", Value: "facebook"},
					{Label: "X (Twitter)", Value: "twitter"},
					{Label: "Instagram", Value: "instagram"},
					{Label: "YouTube", Value: "youtube"},
					{Label: "WhatsApp", Value: "whatsapp"},
				}},
			FieldDefinition{Name: "url", Type: FieldURL, Label: "Profile URL", Required: true, DisplayOrder: 20},
		).
		MustBuild()
}

func timelineSchema() SectionSchema {
	return NewSchemaBuilder(TypeTimeline).
		WithName("Timeline").
		WithDescription("Milestones in chronological order").
		WithCategory("content").
		WithIcon("clock").
		WithLayouts(LayoutList, LayoutContained).
		AddArrayField("items", "Milestones",
			FieldDefinition{Name: "date", Type: FieldDate, Label: "Date", Required: true, DisplayOrder: 10},
			FieldDefinition{Name: "title", Type: FieldText, Label: "Title", Required: true, DisplayOrder: 20},
			FieldDefinition{Name: "description", Type: FieldRichText, Label: "Description", DisplayOrder: 30},
		).
		MustBuild()
}

func testimonialsSchema() SectionSchema {
	return NewSchemaBuilder(TypeTestimonials).
		WithName("Testimonials").
		WithDescription("Quotes from residents and officials").
		WithCategory("marketing").
		WithIcon("message-circle").
		WithLayouts(LayoutCarousel, LayoutGrid, LayoutList).
		AddArrayField("items", "Testimonials",
			FieldDefinition{Name: "quote", Type: FieldRichText, Label: "Quote", Required: true, DisplayOrder: 10},
			FieldDefinition{Name: "author", Type: FieldText, Label: "Author", Required: true, DisplayOrder: 20},
			FieldDefinition{Name: "role", Type: FieldText, Label: "Role", DisplayOrder: 30},
			FieldDefinition{Name: "image", Type: FieldImage, Label: "Photo", DisplayOrder: 40},
		).
		MustBuild()
}

func statsSchema() SectionSchema {
	return NewSchemaBuilder(TypeStats).
		WithName("Statistics").
		WithDescription("Key figures shown as value, label and icon").
		WithCategory("content").
		WithIcon("bar-chart").
		WithLayouts(LayoutRow, LayoutGrid).
		AddArrayField("items", "Figures",
			FieldDefinition{Name: "value", Type: FieldText, Label: "Value", Required: true, DisplayOrder: 10},
			FieldDefinition{Name: "label", Type: FieldText, Label: "Label", Required: true, DisplayOrder: 20},
			FieldDefinition{Name: "icon", Type: FieldText, Label: "Icon", DisplayOrder: 30},
		).
		MustBuild()
}

func servicesListSchema() SectionSchema {
	return NewSchemaBuilder(TypeServicesList).
		WithName("Services").
		WithDescription("Cards describing services offered to residents").
		WithCategory("content").
		WithIcon("grid").
		WithLayouts(LayoutGrid, LayoutCarousel, LayoutList, LayoutRow, LayoutScrollingRow, LayoutMasonry, LayoutSplit, LayoutFullWidth, LayoutContained).
		AddArrayField("items", "Services", listItemFields()...).
		MustBuild()
}
