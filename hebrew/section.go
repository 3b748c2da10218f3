package hebrew

// ExtractSectionRef returns the first section citation found in text, such as
// "סעיף 3", "סעיף 3(א)" or "סעיף 12(ג)(2)", or the empty string when there is
// none. The match is returned verbatim from the input.
func (p *Profile) ExtractSectionRef(text string) string {
	return p.section.FindString(text)
}

// ExtractSectionRef applies the built-in Hebrew profile.
func ExtractSectionRef(text string) string {
	return defaultProfile.ExtractSectionRef(text)
}
