package models

// Owner identifies who posted a content item: a staff author or a
// journalist account — exactly one, never both, never neither. Building
// an Owner through AuthoredBy/SubmittedBy makes the XOR invariant a
// construction-time guarantee; Validate on the content models remains
// the persistence-time check for rows assembled by hand.
type Owner struct {
	AuthorID     *uint
	JournalistID *uint
}

func AuthoredBy(userID uint) Owner {
	return Owner{AuthorID: &userID}
}

func SubmittedBy(journalistID uint) Owner {
	return Owner{JournalistID: &journalistID}
}

func (o Owner) Valid() bool {
	return (o.AuthorID != nil) != (o.JournalistID != nil)
}

func validateOwnership(authorID, journalistID *uint) error {
	if authorID == nil && journalistID == nil {
		return ErrorValidation{Message: "a post must have either an author or a journalist"}
	}
	if authorID != nil && journalistID != nil {
		return ErrorValidation{Message: "a post cannot have both an author and a journalist"}
	}
	return nil
}
