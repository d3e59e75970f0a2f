package validators

import "github.com/MKhiriev/go-portfolio/models"

// Rule set names accepted by [RuleValidator.Validate].
const (
	RuleSetID             = "id"
	RuleSetLogin          = "login"
	RuleSetProject        = "project"
	RuleSetSkill          = "skill"
	RuleSetTimelineCreate = "timeline_create"
	RuleSetTimelineUpdate = "timeline_update"
	RuleSetContact        = "contact"
	RuleSetContactRead    = "contact_read"
	RuleSetOwnerUpdate    = "owner_update"
)

// MessageInvalidID is reported for a malformed id path parameter.
const MessageInvalidID = "Invalid ID format"

func idParamRules() []*Chain {
	return []*Chain{
		Param("id").UUID().WithMessage(MessageInvalidID),
	}
}

func loginRules() []*Chain {
	return []*Chain{
		Body("email").Trim().Email().WithMessage("Please provide a valid email address"),
		Body("password").NotEmpty().WithMessage("Password is required"),
	}
}

func projectRules() []*Chain {
	return []*Chain{
		Body("title").Trim().Length(3, 100).WithMessage("Title must be between 3 and 100 characters"),
		Body("description").Trim().Length(10, 500).WithMessage("Description must be between 10 and 500 characters"),
		Body("image").Optional().URL().WithMessage("Image must be a valid URL"),
		Body("tags").Array(1).WithMessage("At least one tag is required"),
		Body("tags.*").Trim().Length(1, 0).WithMessage("Tags cannot be empty"),
		Body("categories").Array(1).WithMessage("At least one category is required"),
		Body("categories.*").Trim().OneOf(models.ProjectCategories...).WithMessage("Invalid category value"),
		Body("github").Optional().URL().WithMessage("GitHub URL must be valid"),
		Body("demo").Optional().URL().WithMessage("Demo URL must be valid"),
		Body("featured").Optional().Boolean().WithMessage("Featured must be a boolean"),
		Body("order").Optional().Int(0).WithMessage("Order must be a positive integer"),
	}
}

func skillRules() []*Chain {
	return []*Chain{
		Body("title").Trim().Length(3, 50).WithMessage("Title must be between 3 and 50 characters"),
		Body("icon").Trim().
			NotEmpty().WithMessage("Icon name is required").
			OneOf(models.IconNames()...).WithMessage("Icon must be one of the predefined icon names"),
		Body("skills").Array(1).WithMessage("At least one skill is required"),
		Body("skills.*").Trim().Length(1, 0).WithMessage("Skills cannot be empty"),
		Body("order").Optional().Int(0).WithMessage("Order must be a positive integer"),
	}
}

func timelineCreateRules() []*Chain {
	return []*Chain{
		Body("year").Trim().NotEmpty().WithMessage("Year is required"),
		Body("title").Trim().Length(1, 100).WithMessage("Title must be between 1 and 100 characters"),
		Body("description").Trim().Length(1, 500).WithMessage("Description must be between 1 and 500 characters"),
	}
}

func timelineUpdateRules() []*Chain {
	return []*Chain{
		Body("year").Optional().Trim().NotEmpty().WithMessage("Year cannot be empty"),
		Body("title").Optional().Trim().Length(1, 100).WithMessage("Title must be between 1 and 100 characters"),
		Body("description").Optional().Trim().Length(1, 500).WithMessage("Description must be between 1 and 500 characters"),
	}
}

func contactRules() []*Chain {
	return []*Chain{
		Body("name").Trim().Length(1, 50).WithMessage("Name must be between 1 and 50 characters"),
		Body("email").Trim().Email().WithMessage("Please provide a valid email address"),
		Body("subject").Optional().Trim().Length(0, 100).WithMessage("Subject cannot be more than 100 characters"),
		Body("message").Trim().Length(10, 1000).WithMessage("Message must be between 10 and 1000 characters"),
	}
}

func contactReadRules() []*Chain {
	return []*Chain{
		Body("read").Boolean().WithMessage("Read status must be a boolean"),
		Body("read").Exists().WithMessage("Read status is required"),
	}
}

func ownerUpdateRules() []*Chain {
	return []*Chain{
		Body("name").Optional().Trim().Length(2, 50).WithMessage("Name must be between 2 and 50 characters"),
		Body("title").Optional().Trim().Length(0, 100).WithMessage("Title cannot be more than 100 characters"),
		Body("locationLink").OptionalOrEmpty().Trim().URL().WithMessage("Location link must be a valid URL"),
		Body("instagram").OptionalOrEmpty().Trim().URL().WithMessage("Instagram URL must be valid"),
		Body("linkedin").OptionalOrEmpty().Trim().URL().WithMessage("LinkedIn URL must be valid"),
		Body("github").OptionalOrEmpty().Trim().URL().WithMessage("GitHub URL must be valid"),
	}
}

func defaultRuleSets() map[string][]*Chain {
	return map[string][]*Chain{
		RuleSetID:             idParamRules(),
		RuleSetLogin:          loginRules(),
		RuleSetProject:        projectRules(),
		RuleSetSkill:          skillRules(),
		RuleSetTimelineCreate: timelineCreateRules(),
		RuleSetTimelineUpdate: timelineUpdateRules(),
		RuleSetContact:        contactRules(),
		RuleSetContactRead:    contactReadRules(),
		RuleSetOwnerUpdate:    ownerUpdateRules(),
	}
}
