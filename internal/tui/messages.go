package tui

import "github.com/cloudix/coindesk/models"

type loginDoneMsg struct {
	res models.LoginResult
}

type loggedOutMsg struct {
	res models.Result
}

type userLoadedMsg struct {
	res models.UserDataResult
}

type profileSavedMsg struct {
	res models.Result
}

type questsLoadedMsg struct {
	res models.QuestsResult
}

type claimDoneMsg struct {
	res models.ClaimResult
}

type servicesLoadedMsg struct {
	res models.ServicesResult
}

type validateDoneMsg struct {
	res models.ValidateRedeemResult
}

type confirmDoneMsg struct {
	res models.ConfirmRedeemResult
}

type settingsLoadedMsg struct {
	res models.SettingsResult
}

type settingsSavedMsg struct {
	res   models.Result
	theme string
}

type coinsAddedMsg struct {
	res models.BalanceResult
}

type adminActionMsg struct {
	res models.Result
}

type updateCheckedMsg struct {
	res models.UpdateCheckResult
}

type openedMsg struct {
	res models.Result
}

type installStartedMsg struct {
	res models.Result
}

type copiedMsg struct{}

type clearStatusMsg struct{}
