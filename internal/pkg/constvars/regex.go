package constvars

const (
	RegexContainAtLeastOneSpecialChar = `.*[!@#$%^&*(),.?":{}|<>].*`
	RegexContainAtLeastOneUppercase   = `.*[A-Z].*`
	RegexEmail                        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexPersonName                   = `^[\p{L} -]+$`
	RegexPhoneDigits                  = `^\d{9}$`
	RegexTimeHHMM                     = `^([01]\d|2[0-3]):[0-5]\d$`
)
