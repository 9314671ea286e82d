package controllers

import (
	"fmt"
	"net/url"
	"regexp"
)

const (
	maxBioLength     = 150
	maxCaptionLength = 2200
	maxContentLength = 2200
	maxReasonLength  = 2000
)

var profileNamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)

// validateProfileName returns one message per violated constraint.
func validateProfileName(name string) []string {
	var messages []string
	if len(name) < 3 || len(name) > 30 {
		messages = append(messages, "name must be between 3 and 30 characters long")
	}
	if !profileNamePattern.MatchString(name) {
		messages = append(messages, "name can only contain letters")
	}
	return messages
}

func validateBio(bio string) []string {
	if len(bio) > maxBioLength {
		return []string{fmt.Sprintf("bio must be no more than %d characters long", maxBioLength)}
	}
	return nil
}

func validatePictureURL(picture string) []string {
	if picture == "" {
		return nil
	}
	parsed, err := url.Parse(picture)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return []string{"pictureUrl must be a valid http or https URL"}
	}
	return nil
}

func validateContentURL(content string) []string {
	if content == "" {
		return []string{"contentUrl is required"}
	}
	parsed, err := url.Parse(content)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return []string{"contentUrl must be a valid http or https URL"}
	}
	return nil
}

func validateCaption(caption string) []string {
	if len(caption) > maxCaptionLength {
		return []string{fmt.Sprintf("caption must be no more than %d characters long", maxCaptionLength)}
	}
	return nil
}

func validateCommentContent(content string) []string {
	var messages []string
	if content == "" {
		messages = append(messages, "content is required")
	}
	if len(content) > maxContentLength {
		messages = append(messages, fmt.Sprintf("content must be no more than %d characters long", maxContentLength))
	}
	return messages
}

func validateAlertReason(reason string) []string {
	var messages []string
	if reason == "" {
		messages = append(messages, "reason is required")
	}
	if len(reason) > maxReasonLength {
		messages = append(messages, fmt.Sprintf("reason must be no more than %d characters long", maxReasonLength))
	}
	return messages
}
