package mail_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/pkg/mail"
)

func TestMailtoEncodesSpacesAsPercent20(t *testing.T) {
	uri := mail.To("orders@example.com").
		Subject("New Order from Mona - 8/29/2026").
		Text("Line one\nLine two").
		Mailto()

	require.True(t, strings.HasPrefix(uri, "mailto:orders@example.com?"))
	require.Contains(t, uri, "subject=New%20Order%20from%20Mona%20-%208%2F29%2F2026")
	require.Contains(t, uri, "body=Line%20one%0ALine%20two")
	// mailto handlers render "+" literally, so spaces must be %20.
	require.NotContains(t, uri, "+")
}

func TestMailtoMultipleRecipients(t *testing.T) {
	uri := mail.To("a@example.com", "b@example.com").Subject("hi").Mailto()
	require.True(t, strings.HasPrefix(uri, "mailto:a@example.com,b@example.com?"))
}
