package mail

import "fmt"

const cardStyle = `max-width:480px;margin:0 auto;background:#ffffff;border-radius:12px;` +
	`padding:24px 20px;border:1px solid #e5e7eb;font-family:system-ui,sans-serif;`

const codeStyle = `display:inline-block;font-size:28px;letter-spacing:0.42em;` +
	`padding:10px 18px;border-radius:999px;font-weight:700;`

// SignupOTPEmail renders the verification email for a new account.
func SignupOTPEmail(name, code string) (subject, html string) {
	if name == "" {
		name = "there"
	}
	subject = "Verify your email for ExpensePro"
	html = fmt.Sprintf(`<div style="background:#f3f4f6;padding:24px;">
  <div style="%s">
    <h1 style="font-size:22px;color:#111827;">Verify your email, %s</h1>
    <p style="font-size:14px;color:#4b5563;">Use the one-time code below to complete your sign up.</p>
    <div style="text-align:center;margin:24px 0;">
      <div style="%sbackground:#ecfdf3;color:#16a34a;border:1px solid #bbf7d0;">%s</div>
      <p style="font-size:13px;color:#6b7280;">This code expires in <strong>10 minutes</strong>.</p>
    </div>
    <p style="font-size:13px;color:#6b7280;">If you didn't try to create an ExpensePro account, you can safely ignore this email.</p>
  </div>
</div>`, cardStyle, name, codeStyle, code)
	return subject, html
}

// ResetOTPEmail renders the password-reset email.
func ResetOTPEmail(name, code string) (subject, html string) {
	if name == "" {
		name = "there"
	}
	subject = "Your ExpensePro password reset code"
	html = fmt.Sprintf(`<div style="background:#f3f4f6;padding:24px;">
  <div style="%s">
    <h1 style="font-size:22px;color:#111827;">Reset your password, %s</h1>
    <p style="font-size:14px;color:#4b5563;">Use the following one-time code to reset your password.</p>
    <div style="text-align:center;margin:24px 0;">
      <div style="%sbackground:#eff6ff;color:#1d4ed8;border:1px solid #bfdbfe;">%s</div>
      <p style="font-size:13px;color:#6b7280;">This code will expire in <strong>10 minutes</strong>.</p>
    </div>
    <p style="font-size:13px;color:#6b7280;">If you didn't request a password reset, you can safely ignore this email.</p>
  </div>
</div>`, cardStyle, name, codeStyle, code)
	return subject, html
}
