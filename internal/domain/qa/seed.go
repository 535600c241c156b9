package qa

// DefaultSeed returns the built-in FAQ knowledge base used to prime the
// embedding cache when no seed file is configured.
func DefaultSeed() []FAQEntry {
	return []FAQEntry{
		{
			Question: "How do I change my profile information?",
			Answer:   "Navigate to your profile page, click on 'Edit Profile', and make the desired changes.",
		},
		{
			Question: "What steps do I take to reset my password?",
			Answer:   "Go to account settings, select 'Change Password', enter your current password and then the new one. Confirm the new password and save the changes.",
		},
		{
			Question: "How can I restore my account to its default settings?",
			Answer:   "In the account settings, there should be an option labeled 'Restore Default'. Clicking this will revert all custom settings back to their original state.",
		},
		{
			Question: "Is it possible to change my registered email address?",
			Answer:   "Yes, navigate to account settings, find the 'Change Email' option, enter your new email, and follow the verification process.",
		},
		{
			Question: "How can I retrieve lost data from my account?",
			Answer:   "Contact our support team with details of the lost data. They'll guide you through the recovery process.",
		},
		{
			Question: "Are there any guidelines on setting a strong password?",
			Answer:   "Absolutely! Use a combination of uppercase and lowercase letters, numbers, and special characters. Avoid using easily guessable information like birthdays or names.",
		},
		{
			Question: "Can I set up two-factor authentication for my account?",
			Answer:   "Yes, in the security section of account settings, there's an option for two-factor authentication. Follow the setup instructions provided there.",
		},
		{
			Question: "How do I deactivate my account?",
			Answer:   "Under account settings, there's a 'Deactivate Account' option. Remember, this action is irreversible.",
		},
		{
			Question: "What do I do if my account has been compromised?",
			Answer:   "Immediately reset your password and contact our security team for further guidance.",
		},
		{
			Question: "Can I customize the notifications I receive?",
			Answer:   "Yes, head to the notifications settings in your account and choose which ones you'd like to receive.",
		},
	}
}
