package invites_controllers

import (
	invites_services "taskhive/internal/features/invites/services"
)

var inviteController = &InviteController{
	inviteService: invites_services.GetInviteService(),
}

func GetInviteController() *InviteController {
	return inviteController
}
