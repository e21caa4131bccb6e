package notify

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender delivers via a plain SMTP relay (net/smtp, AUTH PLAIN). The
// message is a two-part MIME body: text + base64 PDF attachment.
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func (s *SMTPSender) Send(_ context.Context, m Message) error {
	if s.Host == "" || s.From == "" {
		return fmt.Errorf("smtp non configuré")
	}
	var b strings.Builder
	boundary := "QUITTANCE-BOUNDARY"
	fmt.Fprintf(&b, "From: %s\r\n", s.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(m.Body)
	b.WriteString("\r\n")

	if len(m.Attachment) > 0 {
		fmt.Fprintf(&b, "--%s\r\n", boundary)
		b.WriteString("Content-Type: application/pdf\r\n")
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", m.AttachmentName)
		enc := base64.StdEncoding.EncodeToString(m.Attachment)
		// 76-char lines per RFC 2045
		for len(enc) > 76 {
			b.WriteString(enc[:76])
			b.WriteString("\r\n")
			enc = enc[76:]
		}
		b.WriteString(enc)
		b.WriteString("\r\n")
	}
	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	addr := s.Host + ":" + s.Port
	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}
	return smtp.SendMail(addr, auth, s.From, []string{m.To}, []byte(b.String()))
}
