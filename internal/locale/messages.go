package locale

// The client emits only a handful of messages of its own; everything else
// is backend content. These are the localized strings for those messages.

const (
	MsgPasswordMismatch = "password_mismatch"
	MsgLoginRequired    = "login_required"
	MsgAdminOnly        = "admin_only"
	MsgAlreadySignedIn  = "already_signed_in"
	MsgNotFound         = "not_found"
	MsgNetworkError     = "network_error"
	MsgLoggedOut        = "logged_out"
)

var messages = map[Locale]map[string]string{
	Persian: {
		MsgPasswordMismatch: "رمز عبور و تکرار آن یکسان نیستند",
		MsgLoginRequired:    "برای دسترسی به این بخش ابتدا وارد شوید",
		MsgAdminOnly:        "این بخش فقط برای مدیران در دسترس است",
		MsgAlreadySignedIn:  "شما قبلاً وارد شده‌اید",
		MsgNotFound:         "موردی یافت نشد",
		MsgNetworkError:     "خطای شبکه؛ لطفاً دوباره تلاش کنید",
		MsgLoggedOut:        "با موفقیت خارج شدید",
	},
	English: {
		MsgPasswordMismatch: "Passwords do not match",
		MsgLoginRequired:    "Please log in to access this area",
		MsgAdminOnly:        "This area is available to admins only",
		MsgAlreadySignedIn:  "Already signed in",
		MsgNotFound:         "Not found",
		MsgNetworkError:     "Network error, please try again",
		MsgLoggedOut:        "Logged out",
	},
}

// T translates a message key into the manager's current locale. Unknown
// keys come back unchanged.
func (m *Manager) T(key string) string {
	if msg, ok := messages[m.Current()][key]; ok {
		return msg
	}
	return key
}
