package notify

import (
	"fmt"
	"html"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	nameCaser     = cases.Title(language.English)
	amountPrinter = message.NewPrinter(language.English)
)

func displayName(name string) string {
	return html.EscapeString(nameCaser.String(name))
}

func formatAmount(amount int64) string {
	return amountPrinter.Sprintf("%d", amount)
}

// DonorConfirmation renders the thank-you email sent to the donor after the
// ledger commit.
func DonorConfirmation(donorEmail, donorName, campaignTitle string, amount int64, totalDonorsCount int) Message {
	name := displayName(donorName)
	title := html.EscapeString(campaignTitle)
	formatted := formatAmount(amount)
	return Message{
		To:      donorEmail,
		ToName:  donorName,
		Subject: fmt.Sprintf("Thank You for Your Donation to %s!", campaignTitle),
		HTML: fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #f5f5f5; border-radius: 8px;">
    <h2 style="color: #28a745;">Thank You, %s!</h2>
    <p style="color: #666; font-size: 16px;">Your generous donation of <strong>$%s</strong> to <strong>%s</strong> has been received successfully!</p>
    <div style="background-color: #fff; padding: 15px; border-left: 4px solid #007bff; border-radius: 4px; margin: 15px 0;">
        <p><strong>Campaign:</strong> %s</p>
        <p><strong>Amount Donated:</strong> $%s</p>
        <p><strong>Total Campaign Donors:</strong> %d</p>
        <p><strong>Date:</strong> %s</p>
    </div>
    <p style="color: #666; font-size: 16px;">Your contribution is making a real difference in people's lives. Thank you for your compassion and support!</p>
    <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
    <p style="color: #999; font-size: 14px;">Best regards,<br><strong>Good Heart Charity Team</strong></p>
</div>`,
			name, formatted, title, title, formatted, totalDonorsCount, time.Now().Format(time.RFC1123)),
	}
}

// NGOAlert renders the new-donation notice sent to the campaign's NGO contact.
func NGOAlert(ngoEmail, ngoName, campaignTitle, donorName string, amount int64) Message {
	return Message{
		To:      ngoEmail,
		ToName:  ngoName,
		Subject: fmt.Sprintf("New Donation Received for %s!", campaignTitle),
		HTML: fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; padding: 20px; background-color: #f5f5f5; border-radius: 8px;">
    <h2 style="color: #28a745;">Thank You for Your Trust!</h2>
    <p style="color: #666; font-size: 16px;">Great news, <strong>%s</strong>!</p>
    <p style="color: #666; font-size: 16px;">Your campaign <strong>%s</strong> has received a new donation!</p>
    <div style="background-color: #fff; padding: 15px; border-left: 4px solid #28a745; border-radius: 4px; margin: 15px 0;">
        <p><strong>Donor Name:</strong> %s</p>
        <p><strong>Donation Amount:</strong> $%s</p>
        <p><strong>Date:</strong> %s</p>
    </div>
    <p style="color: #666; font-size: 16px;">Every contribution brings you closer to your goal. Thank you for making a difference!</p>
    <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
    <p style="color: #999; font-size: 14px;">Best regards,<br><strong>Good Heart Charity Team</strong></p>
</div>`,
			html.EscapeString(ngoName), html.EscapeString(campaignTitle), displayName(donorName), formatAmount(amount), time.Now().Format(time.RFC1123)),
	}
}
